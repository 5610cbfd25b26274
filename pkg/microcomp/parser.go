package microcomp

import (
	"strconv"
	"strings"
)

// MessageIncompleteToken is reported when a token has no values after its last colon
const MessageIncompleteToken = "Incomplete token"

// ParseError describes why a token could not be parsed. It is returned as a value
// inside ParseResult, never raised.
type ParseError struct {
	Message string `json:"message" yaml:"message"`
	Token   string `json:"token" yaml:"token"`
}

func (e *ParseError) Error() string {
	return e.Message + ": " + e.Token
}

// ParseResult holds either a Token or an Error, never both
type ParseResult struct {
	Token Token       `json:"token,omitempty" yaml:"token,omitempty"`
	Error *ParseError `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether parsing produced a token
func (r ParseResult) OK() bool {
	return r.Error == nil && r.Token != nil
}

type customField struct {
	name    string
	handler TypeHandler
}

// Parser turns search segments into tokens. The zero value recognises tags,
// categories and cf: custom fields; WithCustomFields adds keywords for known
// custom fields. A Parser is immutable and safe for concurrent use.
type Parser struct {
	customFields map[string]customField
}

// Option configures a Parser
type Option func(*Parser)

// WithCustomFields registers custom fields by name so that "<name>:<value>" parses
// as a custom field token and cf: tokens pick up the field type
func WithCustomFields(fields map[string]TypeHandler) Option {
	return func(p *Parser) {
		for name, handler := range fields {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				continue
			}
			p.customFields[key] = customField{name: strings.TrimSpace(name), handler: handler}
		}
	}
}

// NewParser creates a parser with the given options
func NewParser(opts ...Option) *Parser {
	p := &Parser{customFields: make(map[string]customField)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseCompleteToken parses one complete "type:[operator:]values" segment with
// the default parser
func ParseCompleteToken(input string) ParseResult {
	return NewParser().Parse(input)
}

// Parse parses one complete segment into a token.
//
//	tag:invoice,'blue sky'   -> TagToken{Values: [invoice, blue sky], Operator: and}
//	cat:not:receipt          -> CategoryToken{Values: [receipt], Operator: not}
//	cf:total:>=:100          -> CustomFieldToken{FieldName: total, Operator: >=, Value: "100"}
//	hello                    -> FreeTextToken{Value: hello}
//	tag:                     -> ParseError{Message: "Incomplete token"}
func (p *Parser) Parse(input string) ParseResult {
	// Blank input carries nothing to search for, so it is reported instead of
	// becoming an empty free text token
	if strings.TrimSpace(input) == "" {
		return incomplete(input)
	}

	parts := SplitByColon(input)
	if len(parts) == 1 {
		return freeText(input)
	}

	keyword := strings.ToLower(strings.TrimSpace(parts[0]))
	rest := parts[1:]

	switch keyword {
	case "tag", "tags":
		op, list := splitOperator(rest, ParseTagOperator, TagOperatorAll)
		values := splitValues(list)
		if len(values) == 0 {
			return incomplete(input)
		}
		return ParseResult{Token: &TagToken{Values: values, Operator: op, Raw: input}}

	case "cat", "category":
		op, list := splitOperator(rest, ParseCategoryOperator, CategoryOperatorAll)
		values := splitValues(list)
		if len(values) == 0 {
			return incomplete(input)
		}
		return ParseResult{Token: &CategoryToken{Values: values, Operator: op, Raw: input}}

	case "cf":
		name := Unquote(rest[0])
		if name == "" || len(rest) < 2 {
			return incomplete(input)
		}
		field, ok := p.customFields[strings.ToLower(name)]
		if !ok {
			field = customField{name: name, handler: TypeText}
		}
		return p.parseCustomField(input, field, rest[1:])
	}

	if field, ok := p.customFields[keyword]; ok {
		return p.parseCustomField(input, field, rest)
	}

	// Unknown keywords stay searchable as plain text
	return freeText(input)
}

func (p *Parser) parseCustomField(input string, field customField, rest []string) ParseResult {
	// "cf:total:>=" is an operator still waiting for its value
	if len(rest) == 1 && isOperatorSymbol(strings.TrimSpace(rest[0])) {
		return incomplete(input)
	}

	op, text := splitOperator(rest, ParseNumericOperator, OperatorEqual)
	text = Unquote(text)
	if text == "" {
		return incomplete(input)
	}

	return ParseResult{Token: &CustomFieldToken{
		FieldName:   field.name,
		TypeHandler: field.handler,
		Operator:    op,
		Value:       convertValue(field.handler, text),
		Raw:         input,
	}}
}

// isOperatorSymbol reports whether s is a comparison symbol such as ">=".
// Word operators like "gt" stay valid text values.
func isOperatorSymbol(s string) bool {
	_, ok := ParseNumericOperator(s)
	return ok && strings.Trim(s, "=!<>") == ""
}

// ParseLine parses every segment of a search line
func (p *Parser) ParseLine(line string) []ParseResult {
	segments := SplitSegments(line)
	results := make([]ParseResult, 0, len(segments))
	for _, segment := range segments {
		results = append(results, p.Parse(segment))
	}
	return results
}

// ParseLine parses every segment of a search line with the default parser
func ParseLine(line string) []ParseResult {
	return NewParser().ParseLine(line)
}

// splitOperator separates an explicit operator segment from the value list. The
// first remaining segment only counts as an operator when another segment follows
// it, so "tag:not" is a tag named "not".
func splitOperator[T any](rest []string, parse func(string) (T, bool), implicit T) (T, string) {
	if len(rest) >= 2 {
		if op, ok := parse(rest[0]); ok {
			return op, strings.Join(rest[1:], ":")
		}
	}
	return implicit, strings.Join(rest, ":")
}

func convertValue(handler TypeHandler, text string) any {
	switch handler {
	case TypeInt:
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n
		}
	case TypeFloat, TypeMonetary:
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	}
	return text
}

func freeText(input string) ParseResult {
	return ParseResult{Token: &FreeTextToken{Value: strings.TrimSpace(input), Raw: input}}
}

func incomplete(input string) ParseResult {
	return ParseResult{Error: &ParseError{Message: MessageIncompleteToken, Token: input}}
}
