package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// ErrInvalidSortDirection is returned for sort directions other than asc and desc
var ErrInvalidSortDirection = errors.New("invalid sort direction")

// SortDirection orders search results
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection validates a sort direction. An empty string means no direction.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "asc":
		return SortAscending, nil
	case "desc":
		return SortDescending, nil
	default:
		return "", fmt.Errorf("%w: %q (use asc or desc)", ErrInvalidSortDirection, s)
	}
}

// SearchInput is everything the builder needs to produce backend parameters
type SearchInput struct {
	Tokens        []microcomp.Token
	PageNumber    int
	PageSize      int
	SortBy        string
	SortDirection SortDirection
}

// QueryParams is the request body accepted by the document search endpoint
type QueryParams struct {
	Filters       Filters       `json:"filters" yaml:"filters"`
	PageNumber    int           `json:"page_number" yaml:"page_number"`
	PageSize      int           `json:"page_size" yaml:"page_size"`
	SortBy        string        `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`
	SortDirection SortDirection `json:"sort_direction,omitempty" yaml:"sort_direction,omitempty"`
}

// Filters groups the translated tokens by kind
type Filters struct {
	FTS        *FTS            `json:"fts,omitempty" yaml:"fts,omitempty"`
	Tags       []TagGroup      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Categories []CategoryGroup `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// FTS holds the free text terms
type FTS struct {
	Terms []string `json:"terms" yaml:"terms"`
}

// TagGroup is one tag token
type TagGroup struct {
	Values   []string              `json:"values" yaml:"values"`
	Operator microcomp.TagOperator `json:"operator" yaml:"operator"`
}

// CategoryGroup is one category token
type CategoryGroup struct {
	Values   []string                   `json:"values" yaml:"values"`
	Operator microcomp.CategoryOperator `json:"operator" yaml:"operator"`
}

// IsEmpty reports whether no filter was produced
func (f Filters) IsEmpty() bool {
	return f.FTS == nil && len(f.Tags) == 0 && len(f.Categories) == 0
}
