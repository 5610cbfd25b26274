// Package suggest computes autocomplete suggestions for the segment of a search
// line that is still being typed.
package suggest

import (
	"fmt"
	"strings"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
)

// DefaultMaxSuggestions limits the list when no maximum is configured
const DefaultMaxSuggestions = 6

// Type describes what a suggestion completes
type Type string

const (
	TypeKeyword  Type = "keyword"
	TypeOperator Type = "operator"
	TypeField    Type = "field"
	TypeValue    Type = "value"
)

// Suggestion is one completion candidate. Fragment is the text already typed
// that the suggestion replaces.
type Suggestion struct {
	Text     string `json:"text" yaml:"text"`
	Type     Type   `json:"type" yaml:"type"`
	Fragment string `json:"fragment" yaml:"fragment"`
}

// Source provides known names per token kind
type Source interface {
	Names(kind microcomp.Kind) ([]string, error)
}

var keywords = []string{"tag:", "cat:", "cf:"}

var listOperators = []string{"not:", "any:"}

var numericOperators = []string{"=:", "!=:", ">:", ">=:", "<:", "<=:"}

// Suggester builds suggestion lists from a vocabulary source
type Suggester struct {
	source Source
	max    int
}

// New creates a suggester. A non-positive max uses DefaultMaxSuggestions.
func New(source Source, max int) *Suggester {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	return &Suggester{source: source, max: max}
}

// Suggest returns suggestions for the in-progress segment at the end of line
func (s *Suggester) Suggest(line string) ([]Suggestion, error) {
	_, segment := microcomp.CurrentSegment(line)
	parts := microcomp.SplitByColon(segment)

	var (
		suggestions []Suggestion
		err         error
	)
	if len(parts) == 1 {
		suggestions, err = s.keywordSuggestions(segment)
	} else {
		suggestions, err = s.tokenSuggestions(parts)
	}
	if err != nil {
		return nil, err
	}

	if len(suggestions) > s.max {
		suggestions = suggestions[:s.max]
	}
	return suggestions, nil
}

func (s *Suggester) keywordSuggestions(segment string) ([]Suggestion, error) {
	fields, err := s.source.Names(microcomp.KindCustomField)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	candidates := append([]string{}, keywords...)
	for _, name := range fields {
		// Names that need quoting are only reachable through cf:
		if microcomp.Quote(name) == name {
			candidates = append(candidates, name+":")
		}
	}

	return match(candidates, segment, strings.TrimSpace(segment), nil, TypeKeyword, false), nil
}

func (s *Suggester) tokenSuggestions(parts []string) ([]Suggestion, error) {
	keyword := strings.ToLower(strings.TrimSpace(parts[0]))
	rest := parts[1:]

	switch keyword {
	case "tag", "tags":
		return s.listSuggestions(microcomp.KindTag, rest, func(op string) bool {
			_, ok := microcomp.ParseTagOperator(op)
			return ok
		})
	case "cat", "category":
		return s.listSuggestions(microcomp.KindCategory, rest, func(op string) bool {
			_, ok := microcomp.ParseCategoryOperator(op)
			return ok
		})
	case "cf":
		if len(rest) == 1 {
			return s.fieldSuggestions(rest[0])
		}
		return operatorSuggestions(rest[1:]), nil
	}

	fields, err := s.source.Names(microcomp.KindCustomField)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}
	for _, name := range fields {
		if models.NormalizeName(name) == keyword {
			return operatorSuggestions(rest), nil
		}
	}

	return nil, nil
}

// listSuggestions covers tag and category value lists with their optional operator
func (s *Suggester) listSuggestions(kind microcomp.Kind, rest []string, isOperator func(string) bool) ([]Suggestion, error) {
	names, err := s.source.Names(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s names: %w", kind, err)
	}

	tail := strings.Join(rest, ":")
	if len(rest) >= 2 && isOperator(rest[0]) {
		tail = strings.Join(rest[1:], ":")
	}

	var suggestions []Suggestion
	if len(rest) == 1 && !strings.ContainsAny(tail, ",'\"") {
		suggestions = match(listOperators, tail, strings.TrimSpace(tail), nil, TypeOperator, true)
	}

	filter := microcomp.GetTokenValueItemsFilter(tail)
	exclude := microcomp.GetTokenValueItemsToExclude(tail)
	items := microcomp.SplitByComma(tail)
	fragment := strings.TrimLeft(items[len(items)-1], " \t")

	values := make([]string, 0, len(names))
	for _, name := range names {
		values = append(values, microcomp.Quote(name))
	}
	return append(suggestions, match(values, fragment, filter, exclude, TypeValue, false)...), nil
}

func (s *Suggester) fieldSuggestions(typed string) ([]Suggestion, error) {
	names, err := s.source.Names(microcomp.KindCustomField)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, microcomp.Quote(name)+":")
	}
	fragment := strings.TrimLeft(typed, " \t")
	return match(candidates, fragment, microcomp.Unquote(typed), nil, TypeField, false), nil
}

// operatorSuggestions offers comparison operators until one has been typed in full
func operatorSuggestions(rest []string) []Suggestion {
	if len(rest) != 1 {
		return nil
	}
	typed := strings.TrimSpace(rest[0])
	return match(numericOperators, rest[0], typed, nil, TypeOperator, true)
}

// match returns candidates starting with filter, then those containing it,
// skipping excluded names. Comparison ignores case and surrounding quotes.
func match(candidates []string, fragment, filter string, exclude []string, typ Type, prefixOnly bool) []Suggestion {
	needle := strings.ToLower(filter)
	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[models.NormalizeName(e)] = true
	}

	var prefixed, contained []Suggestion
	for _, candidate := range candidates {
		plain := strings.ToLower(microcomp.Unquote(strings.TrimSuffix(candidate, ":")))
		if excluded[models.NormalizeName(plain)] {
			continue
		}
		// An operator or keyword typed in full needs no suggestion
		if prefixOnly && plain == needle {
			continue
		}

		suggestion := Suggestion{Text: candidate, Type: typ, Fragment: fragment}
		switch {
		case strings.HasPrefix(plain, needle):
			prefixed = append(prefixed, suggestion)
		case !prefixOnly && strings.Contains(plain, needle):
			contained = append(contained, suggestion)
		}
	}

	return append(prefixed, contained...)
}

// Apply merges the chosen suggestion into line. When the typed fragment is not
// a literal prefix of the suggestion it is replaced rather than overlapped.
func Apply(line string, s Suggestion) string {
	base := line
	if s.Fragment != "" && strings.HasSuffix(line, s.Fragment) && !strings.HasPrefix(s.Text, s.Fragment) {
		base = line[:len(line)-len(s.Fragment)]
	}
	return microcomp.AutocompleteText(base, s.Text)
}
