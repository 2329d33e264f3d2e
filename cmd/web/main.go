package main

import (
	"database/sql"
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/de-tools/report-pilot/pkg/server"
	"github.com/de-tools/report-pilot/pkg/services/command"
	"github.com/de-tools/report-pilot/pkg/services/config"
	"github.com/de-tools/report-pilot/pkg/services/dispatch"
	"github.com/de-tools/report-pilot/pkg/services/parser"
	"github.com/de-tools/report-pilot/pkg/services/reports"
	"github.com/de-tools/report-pilot/pkg/store/sales"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Report Pilot",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultProfiles := fmt.Sprintf("%s/.reportpilot.cfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the server config file")
	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", defaultProfiles,
		"Path to the datasource profiles file (default is $HOME/.reportpilot.cfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServerConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	ctx := logger.WithContext(cmd.Context())
	dsn, err := registry.GetDSN(ctx, cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve datasource profile: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	salesStore, err := sales.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create sales store: %w", err)
	}

	dispatcher := dispatch.NewDispatcher(
		reports.NewSalesService(salesStore),
		reports.NewAnalyticsService(salesStore),
		reports.NewMLService(salesStore),
	)
	processor := command.NewProcessor(parser.New(), dispatcher)

	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Host, cfg.Port),
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Commands: processor,
		},
	})

	return api.Start()
}
