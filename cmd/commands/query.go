package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/microcomp/internal/cli"
	"github.com/pluqqy/microcomp/pkg/backend"
	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/query"
)

var (
	queryPage    int
	querySize    int
	querySortBy  string
	querySortDir string
	querySend    bool
	queryCopy    bool
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// QueryResult represents the output structure for the query command
type QueryResult struct {
	Line     string                `json:"line" yaml:"line"`
	Params   query.QueryParams     `json:"params" yaml:"params"`
	Errors   []string              `json:"errors,omitempty" yaml:"errors,omitempty"`
	Response *backend.SearchResult `json:"response,omitempty" yaml:"response,omitempty"`
}

// RenderText prints the parameters as indented JSON followed by parse errors
func (r QueryResult) RenderText(w io.Writer) error {
	data, err := json.MarshalIndent(r.Params, "", "  ")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}

	for _, e := range r.Errors {
		if _, err := fmt.Fprintf(w, "error: %s\n", e); err != nil {
			return err
		}
	}

	if r.Response != nil {
		if _, err := fmt.Fprintf(w, "\nBackend responded %d\n%s\n", r.Response.StatusCode, string(r.Response.Body)); err != nil {
			return err
		}
	}
	return nil
}

// NewQueryCommand creates the query command
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <line>",
		Short: "Build backend query parameters from a search line",
		Long: `Parse a search line and build the query parameters sent to the
document search backend.

Free text becomes full text search terms, tag and category tokens become
filter groups. Incomplete tokens are reported and left out of the query.

Examples:
  # Print the query parameters
  microcomp query 'report tag:invoice,receipt cat:not:draft'

  # Second page sorted by date
  microcomp query 'tag:invoice' --page 2 --sort-by created --sort-dir desc

  # Send the query to the configured backend
  microcomp query 'tag:invoice' --send

  # Copy the JSON to the clipboard
  microcomp query 'tag:invoice' --copy`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().IntVar(&queryPage, "page", 1, "Page number")
	cmd.Flags().IntVar(&querySize, "size", 0, "Page size (default from config)")
	cmd.Flags().StringVar(&querySortBy, "sort-by", "", "Field to sort by (default from config)")
	cmd.Flags().StringVar(&querySortDir, "sort-dir", "", "Sort direction: asc or desc (default from config)")
	cmd.Flags().BoolVar(&querySend, "send", false, "Send the query to the backend")
	cmd.Flags().BoolVar(&queryCopy, "copy", false, "Copy the query JSON to the clipboard")
	addOutputFlag(cmd)

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	settings := ctx.LoadSettingsWithDefault()
	logger := ctx.Logger()
	registry, err := ctx.Registry()
	if err != nil {
		return err
	}

	size := querySize
	if size == 0 {
		size = settings.Search.PageSize
	}
	if err := cli.ValidatePagination(queryPage, size); err != nil {
		return err
	}

	sortBy := querySortBy
	if sortBy == "" {
		sortBy = settings.Search.SortBy
	}
	sortDir := querySortDir
	if sortDir == "" {
		sortDir = settings.Search.SortDirection
	}
	direction, err := query.ParseSortDirection(sortDir)
	if err != nil {
		return err
	}

	line := joinArgs(args)
	var tokens []microcomp.Token
	var parseErrors []string
	for _, r := range registry.Parser().ParseLine(line) {
		if r.Error != nil {
			parseErrors = append(parseErrors, r.Error.Error())
			continue
		}
		tokens = append(tokens, r.Token)
	}

	result := QueryResult{
		Line: line,
		Params: query.NewBuilder(logger).Build(query.SearchInput{
			Tokens:        tokens,
			PageNumber:    queryPage,
			PageSize:      size,
			SortBy:        sortBy,
			SortDirection: direction,
		}),
		Errors: parseErrors,
	}

	if queryCopy {
		data, err := json.Marshal(result.Params)
		if err != nil {
			return fmt.Errorf("failed to encode query: %w", err)
		}
		if err := writeClipboard(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied query to clipboard")
	}

	if querySend {
		client := backend.NewClient(settings.Backend, logger)
		response, err := client.Search(cmd.Context(), result.Params)
		if err != nil {
			return fmt.Errorf("search request failed: %w", err)
		}
		result.Response = response
	}

	return cliOutput(cmd, format, result)
}
