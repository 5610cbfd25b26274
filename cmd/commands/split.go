package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// SplitResult represents the output structure for the split command
type SplitResult struct {
	Input     string   `json:"input" yaml:"input"`
	Separator string   `json:"separator" yaml:"separator"`
	Parts     []string `json:"parts" yaml:"parts"`
}

// RenderText prints one part per line, quoted so empty parts stay visible
func (r SplitResult) RenderText(w io.Writer) error {
	for i, part := range r.Parts {
		if _, err := fmt.Fprintf(w, "%d\t%q\n", i, part); err != nil {
			return err
		}
	}
	return nil
}

var (
	splitComma    bool
	splitSegments bool
)

// NewSplitCommand creates the split command
func NewSplitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <text>",
		Short: "Split text on colons outside quotes",
		Long: `Split text the way the token parser does.

By default the text is split on colons that are not inside a quoted span.
A quote that is never closed keeps the rest of the text, colons included,
in the last part.

Examples:
  # Split a token into keyword, operator and values
  microcomp split 'tag:not:invoice'

  # Colons inside quotes are kept
  microcomp split 'cf:"due date":2024'

  # Split a value list on commas
  microcomp split --comma "invoice, 'blue sky'"

  # Split a whole search line into token segments
  microcomp split --segments 'report tag:a, b cat:x'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSplit,
	}

	cmd.Flags().BoolVar(&splitComma, "comma", false, "Split a value list on commas")
	cmd.Flags().BoolVar(&splitSegments, "segments", false, "Split a search line into token segments")
	addOutputFlag(cmd)

	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if splitComma && splitSegments {
		return fmt.Errorf("--comma and --segments cannot be used together")
	}

	input := joinArgs(args)
	result := SplitResult{Input: input}

	switch {
	case splitComma:
		result.Separator = "comma"
		result.Parts = microcomp.SplitByComma(input)
	case splitSegments:
		result.Separator = "segment"
		result.Parts = microcomp.SplitSegments(input)
	default:
		result.Separator = "colon"
		result.Parts = microcomp.SplitByColon(input)
	}

	return cliOutput(cmd, format, result)
}
