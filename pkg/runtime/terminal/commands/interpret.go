package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/report-pilot/pkg/models/domain"
	"github.com/de-tools/report-pilot/pkg/runtime/terminal/export"
	"github.com/de-tools/report-pilot/pkg/services/command"
	"github.com/spf13/cobra"
)

type InterpretCmd struct {
	userID    string
	dryRun    bool
	processor *command.Processor
	reporter  *export.Reporter
}

func NewInterpretCmd(processor *command.Processor, reporter *export.Reporter) *cobra.Command {
	ic := &InterpretCmd{processor: processor, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "interpret [command text]",
		Short: "Interpret a natural-language report command and run it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.userID, "user", "", "User identity for personalized reports")
	cmd.Flags().BoolVar(&ic.dryRun, "dry-run", false, "Parse the command without executing any generator")

	return cmd
}

func (ic *InterpretCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	text := strings.Join(args, " ")

	if ic.dryRun {
		parsed := ic.processor.Parse(ctx, text)
		return ic.reporter.Handle(domain.CommandOutcome{
			Success: parsed.Error == "",
			Intent:  domain.IntentReport,
			Command: parsed,
			Error:   parsed.Error,
			Message: fmt.Sprintf("reporte: %s, formato: %s, confianza: %.2f", parsed.Kind, parsed.Format, parsed.Confidence),
		})
	}

	var user *domain.User
	if ic.userID != "" {
		user = &domain.User{ID: ic.userID}
	}

	return ic.reporter.Handle(ic.processor.Process(ctx, text, user))
}
