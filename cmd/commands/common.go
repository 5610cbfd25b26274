package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/internal/cli"
)

// addOutputFlag registers the -o/--output flag shared by data commands
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")
}

// outputFormat reads and validates the -o flag
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = string(cli.FormatText)
	}
	return format, cli.ValidateOutputFormat(format)
}

// commandContext builds the context from the root persistent flags. The flags
// are absent when a command runs on its own, as in tests.
func commandContext(cmd *cobra.Command) *cli.CommandContext {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.NewCommandContext(configPath, logLevel)
}

// joinArgs turns the positional arguments back into one search line
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// cliOutput writes data to the command's output in the requested format
func cliOutput(cmd *cobra.Command, format string, data interface{}) error {
	return cli.OutputResults(cmd.OutOrStdout(), format, data)
}
