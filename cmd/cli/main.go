package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/user"

	"github.com/de-tools/report-pilot/pkg/runtime/terminal"
	"github.com/de-tools/report-pilot/pkg/services/command"
	"github.com/de-tools/report-pilot/pkg/services/config"
	"github.com/de-tools/report-pilot/pkg/services/dispatch"
	"github.com/de-tools/report-pilot/pkg/services/parser"
	"github.com/de-tools/report-pilot/pkg/services/reports"
	"github.com/de-tools/report-pilot/pkg/store/sales"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	usr, _ := user.Current()
	profilesPath := fmt.Sprintf("%s/.reportpilot.cfg", usr.HomeDir)
	if env := os.Getenv("REPORTPILOT_PROFILES"); env != "" {
		profilesPath = env
	}
	profile := os.Getenv("REPORTPILOT_PROFILE")
	if profile == "" {
		profile = "default"
	}

	processor, cleanup, err := buildProcessor(profilesPath, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cli := terminal.NewCLI(terminal.Options{
		Processor: processor,
		Output:    os.Stdout,
		AsJSON:    os.Getenv("REPORTPILOT_JSON") == "1",
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildProcessor(profilesPath, profile string) (*command.Processor, func(), error) {
	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	dsn, err := registry.GetDSN(context.Background(), profile)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	salesStore, err := sales.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	dispatcher := dispatch.NewDispatcher(
		reports.NewSalesService(salesStore),
		reports.NewAnalyticsService(salesStore),
		reports.NewMLService(salesStore),
	)

	return command.NewProcessor(parser.New(), dispatcher), func() { db.Close() }, nil
}
