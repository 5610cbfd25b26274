package query

import (
	"github.com/rs/zerolog"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// Builder translates parsed tokens into backend query parameters
type Builder struct {
	log zerolog.Logger
}

// NewBuilder creates a builder that reports skipped tokens to log
func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{log: log}
}

// BuildSearchQueryParams builds query parameters without logging
func BuildSearchQueryParams(in SearchInput) QueryParams {
	return NewBuilder(zerolog.Nop()).Build(in)
}

// Build walks the tokens once, in order, and groups them by kind
func (b *Builder) Build(in SearchInput) QueryParams {
	params := QueryParams{
		PageNumber:    in.PageNumber,
		PageSize:      in.PageSize,
		SortBy:        in.SortBy,
		SortDirection: in.SortDirection,
	}

	var terms []string
	for i, token := range in.Tokens {
		switch t := token.(type) {
		case *microcomp.FreeTextToken:
			if t == nil {
				b.skip(i, token)
				continue
			}
			if t.Value == "" {
				continue
			}
			terms = append(terms, t.Value)
		case *microcomp.TagToken:
			if t == nil {
				b.skip(i, token)
				continue
			}
			params.Filters.Tags = append(params.Filters.Tags, TagGroup{
				Values:   append([]string(nil), t.Values...),
				Operator: t.Operator,
			})
		case *microcomp.CategoryToken:
			if t == nil {
				b.skip(i, token)
				continue
			}
			params.Filters.Categories = append(params.Filters.Categories, CategoryGroup{
				Values:   append([]string(nil), t.Values...),
				Operator: t.Operator,
			})
		case *microcomp.CustomFieldToken:
			if t == nil {
				b.skip(i, token)
				continue
			}
			// not supported by the search endpoint yet
			b.log.Debug().
				Str("field", t.FieldName).
				Str("operator", string(t.Operator)).
				Interface("value", t.Value).
				Msg("custom field filter not sent to backend")
		default:
			b.skip(i, token)
		}
	}

	if len(terms) > 0 {
		params.Filters.FTS = &FTS{Terms: terms}
	}

	return params
}

func (b *Builder) skip(position int, token microcomp.Token) {
	b.log.Warn().
		Int("position", position).
		Str("type", typeName(token)).
		Msg("skipping unsupported token")
}

func typeName(token microcomp.Token) string {
	if token == nil {
		return "nil"
	}
	return string(token.Kind())
}
