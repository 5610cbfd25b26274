package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/internal/cli"
	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// ValuesResult represents the output structure for the values command
type ValuesResult struct {
	Tail    string   `json:"tail" yaml:"tail"`
	Filter  string   `json:"filter" yaml:"filter"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// RenderText prints the in-progress value and the committed ones
func (r ValuesResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Filter:  %q\nExclude: %s\n", r.Filter, cli.QuoteList(r.Exclude))
	return err
}

// NewValuesCommand creates the values command
func NewValuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <tail>",
		Short: "Analyze a value list being typed",
		Long: `Analyze the value list after the last colon of a token being typed.

Prints the value still being typed (used to filter suggestions) and the
values already completed (excluded from suggestions).

Examples:
  microcomp values "invoice, 'blue sky', deleted"
  microcomp values 'forget,me,not,' -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValues,
	}

	addOutputFlag(cmd)

	return cmd
}

func runValues(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	tail := joinArgs(args)
	return cliOutput(cmd, format, ValuesResult{
		Tail:    tail,
		Filter:  microcomp.GetTokenValueItemsFilter(tail),
		Exclude: microcomp.GetTokenValueItemsToExclude(tail),
	})
}
