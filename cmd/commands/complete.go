package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// CompleteResult represents the output structure for the complete command
type CompleteResult struct {
	Text       string `json:"text" yaml:"text"`
	Suggestion string `json:"suggestion" yaml:"suggestion"`
	Index      int    `json:"index" yaml:"index"`
	Result     string `json:"result" yaml:"result"`
}

// RenderText prints the completed text
func (r CompleteResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Result)
	return err
}

// NewCompleteCommand creates the complete command
func NewCompleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <text> <suggestion>",
		Short: "Merge a suggestion into typed text",
		Long: `Merge a suggestion into the text typed so far.

The longest end of the text that matches the start of the suggestion is
replaced by the suggestion; without any overlap the suggestion is appended.
The suggestion is inserted as is, without quoting.

Examples:
  microcomp complete 'report tag:inv' 'invoice'     # report tag:invoice
  microcomp complete 'with tag:' 'tag:blue sky'     # with tag:blue sky
  microcomp complete 'abcabc' 'abc' -o json`,
		Args: cobra.ExactArgs(2),
		RunE: runComplete,
	}

	addOutputFlag(cmd)

	return cmd
}

func runComplete(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	text, suggestion := args[0], args[1]
	return cliOutput(cmd, format, CompleteResult{
		Text:       text,
		Suggestion: suggestion,
		Index:      microcomp.FindLongestMatchingIndex(text, suggestion),
		Result:     microcomp.AutocompleteText(text, suggestion),
	})
}
