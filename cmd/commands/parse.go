package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
)

var parseLine bool

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <token>...",
		Short: "Parse search tokens",
		Long: `Parse each argument as one complete search token and print the result.

Tokens are free text, tag:[op:]values, cat:[op:]values, cf:field[:op]:value,
or a custom field from the vocabulary used as keyword. Tokens without a value
are reported as "Incomplete token".

Examples:
  # Parse a tag token
  microcomp parse 'tag:not:invoice,draft'

  # Parse several tokens at once
  microcomp parse report 'cat:any:bill' 'cf:total:>=:100'

  # Parse a whole search line
  microcomp parse --line 'report tag:invoice, receipt cat:'

  # JSON output
  microcomp parse 'tag:' -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().BoolVar(&parseLine, "line", false, "Treat the arguments as one search line")
	addOutputFlag(cmd)

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	registry, err := ctx.Registry()
	if err != nil {
		return err
	}
	parser := registry.Parser()

	inputs := args
	if parseLine {
		inputs = microcomp.SplitSegments(joinArgs(args))
	}

	results := make(models.ResultViews, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, models.NewResultView(input, parser.Parse(input)))
	}

	return cliOutput(cmd, format, results)
}
