package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/internal/cli"
	"github.com/pluqqy/microcomp/pkg/suggest"
)

var (
	suggestApply int
	suggestMax   int
)

// SuggestResult represents the output structure for the suggest command
type SuggestResult struct {
	Line        string               `json:"line" yaml:"line"`
	Suggestions []suggest.Suggestion `json:"suggestions" yaml:"suggestions"`
	Applied     string               `json:"applied,omitempty" yaml:"applied,omitempty"`
}

// RenderText prints one suggestion per line, or the applied line
func (r SuggestResult) RenderText(w io.Writer) error {
	if r.Applied != "" {
		_, err := fmt.Fprintln(w, r.Applied)
		return err
	}

	if len(r.Suggestions) == 0 {
		_, err := fmt.Fprintln(w, "No suggestions")
		return err
	}

	table := cli.NewTableFormatter(w)
	table.Header("#", "SUGGESTION", "TYPE")
	for i, s := range r.Suggestions {
		table.Row(fmt.Sprintf("%d", i+1), s.Text, string(s.Type))
	}
	return table.Flush()
}

// NewSuggestCommand creates the suggest command
func NewSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <line>",
		Short: "Suggest completions for a search line",
		Long: `Suggest keywords, operators, fields and vocabulary values for the
segment at the end of a search line.

Use --apply to merge the Nth suggestion into the line and print the result.

Examples:
  # Suggest keywords
  microcomp suggest 'report ta'

  # Suggest tags after a keyword
  microcomp suggest 'tag:inv'

  # Apply the first suggestion
  microcomp suggest 'tag:inv' --apply 1

  # JSON output
  microcomp suggest 'cat:' -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSuggest,
	}

	cmd.Flags().IntVar(&suggestApply, "apply", 0, "Apply the Nth suggestion (1-based)")
	cmd.Flags().IntVar(&suggestMax, "max", 0, "Maximum number of suggestions (default from config)")
	addOutputFlag(cmd)

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	settings := ctx.LoadSettingsWithDefault()
	registry, err := ctx.Registry()
	if err != nil {
		return err
	}

	max := suggestMax
	if max <= 0 {
		max = settings.UI.MaxSuggestions
	}

	line := joinArgs(args)
	suggestions, err := suggest.New(registry, max).Suggest(line)
	if err != nil {
		return fmt.Errorf("failed to compute suggestions: %w", err)
	}

	result := SuggestResult{Line: line, Suggestions: suggestions}
	if suggestApply != 0 {
		if suggestApply < 1 || suggestApply > len(suggestions) {
			return fmt.Errorf("suggestion %d does not exist (%d available)", suggestApply, len(suggestions))
		}
		result.Applied = suggest.Apply(line, suggestions[suggestApply-1])
	}

	return cliOutput(cmd, format, result)
}
