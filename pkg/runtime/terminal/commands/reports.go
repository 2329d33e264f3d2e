package commands

import (
	"fmt"

	"github.com/de-tools/report-pilot/pkg/services/command"
	"github.com/spf13/cobra"
)

func NewReportsCmd(processor *command.Processor) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the available report kinds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, entry := range processor.Catalog() {
				marker := ""
				if entry.ML {
					marker = " [ml]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %s%s\n", entry.Kind, entry.Name, marker)
			}
			return nil
		},
	}
}
