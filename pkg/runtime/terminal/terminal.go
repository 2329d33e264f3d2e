package terminal

import (
	"io"
	"os"

	"github.com/de-tools/report-pilot/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-pilot/pkg/runtime/terminal/export"
	"github.com/de-tools/report-pilot/pkg/services/command"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	processor *command.Processor
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Processor *command.Processor
	Output    io.Writer
	AsJSON    bool
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		processor: opts.Processor,
		reporter:  export.NewReporter(opts.Output, opts.AsJSON),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-pilot",
		Short: "Natural-language report interpreter",
	}

	cmd.AddCommand(commands.NewInterpretCmd(cli.processor, cli.reporter))
	cmd.AddCommand(commands.NewReportsCmd(cli.processor))

	return cmd
}
