// Package microcomp compiles the single line typed into a search box into typed
// search tokens and merges autocomplete suggestions into partially typed text.
// Every function in the package is pure and safe for concurrent use.
package microcomp

import "strings"

// Kind identifies the variant of a Token
type Kind string

const (
	KindFreeText    Kind = "free_text"
	KindTag         Kind = "tag"
	KindCategory    Kind = "category"
	KindCustomField Kind = "custom_field"
)

// Token is one parsed search term. The concrete type is one of *FreeTextToken,
// *TagToken, *CategoryToken or *CustomFieldToken.
type Token interface {
	Kind() Kind
	// Source returns the exact input the token was parsed from
	Source() string
	isToken()
}

// TagOperator combines the values of a tag token
type TagOperator string

const (
	TagOperatorAll TagOperator = "and" // implicit: document must carry every tag
	TagOperatorNot TagOperator = "not"
	TagOperatorAny TagOperator = "any"
)

// CategoryOperator combines the values of a category token
type CategoryOperator string

const (
	CategoryOperatorAll CategoryOperator = "and"
	CategoryOperatorNot CategoryOperator = "not"
	CategoryOperatorAny CategoryOperator = "any"
)

// NumericOperator compares a custom field with a value
type NumericOperator string

const (
	OperatorEqual          NumericOperator = "="
	OperatorNotEqual       NumericOperator = "!="
	OperatorGreaterThan    NumericOperator = ">"
	OperatorGreaterOrEqual NumericOperator = ">="
	OperatorLessThan       NumericOperator = "<"
	OperatorLessOrEqual    NumericOperator = "<="
)

// TypeHandler is the data type of a custom field
type TypeHandler string

const (
	TypeText     TypeHandler = "text"
	TypeInt      TypeHandler = "int"
	TypeFloat    TypeHandler = "float"
	TypeMonetary TypeHandler = "monetary"
	TypeDate     TypeHandler = "date"
	TypeBoolean  TypeHandler = "boolean"
)

// TypeHandlers lists every supported custom field type
var TypeHandlers = []TypeHandler{TypeText, TypeInt, TypeFloat, TypeMonetary, TypeDate, TypeBoolean}

// FreeTextToken is a bare word or phrase without a type prefix
type FreeTextToken struct {
	Value string `json:"value" yaml:"value"`
	Raw   string `json:"raw" yaml:"raw"`
}

// TagToken filters documents by tag
type TagToken struct {
	Values   []string    `json:"values" yaml:"values"`
	Operator TagOperator `json:"operator" yaml:"operator"`
	Raw      string      `json:"raw" yaml:"raw"`
}

// CategoryToken filters documents by category (document type)
type CategoryToken struct {
	Values   []string         `json:"values" yaml:"values"`
	Operator CategoryOperator `json:"operator" yaml:"operator"`
	Raw      string           `json:"raw" yaml:"raw"`
}

// CustomFieldToken compares a custom field with a single value. Value holds an
// int64 for int fields, a float64 for float and monetary fields and a string
// otherwise or when the text is not a valid number.
type CustomFieldToken struct {
	FieldName   string          `json:"field_name" yaml:"field_name"`
	TypeHandler TypeHandler     `json:"type_handler" yaml:"type_handler"`
	Operator    NumericOperator `json:"operator" yaml:"operator"`
	Value       any             `json:"value" yaml:"value"`
	Raw         string          `json:"raw" yaml:"raw"`
}

func (t *FreeTextToken) Kind() Kind    { return KindFreeText }
func (t *TagToken) Kind() Kind         { return KindTag }
func (t *CategoryToken) Kind() Kind    { return KindCategory }
func (t *CustomFieldToken) Kind() Kind { return KindCustomField }

func (t *FreeTextToken) Source() string    { return t.Raw }
func (t *TagToken) Source() string         { return t.Raw }
func (t *CategoryToken) Source() string    { return t.Raw }
func (t *CustomFieldToken) Source() string { return t.Raw }

func (*FreeTextToken) isToken()    {}
func (*TagToken) isToken()         {}
func (*CategoryToken) isToken()    {}
func (*CustomFieldToken) isToken() {}

// ParseTagOperator recognises an explicit tag operator keyword
func ParseTagOperator(s string) (TagOperator, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "and":
		return TagOperatorAll, true
	case "not":
		return TagOperatorNot, true
	case "any":
		return TagOperatorAny, true
	}
	return "", false
}

// ParseCategoryOperator recognises an explicit category operator keyword
func ParseCategoryOperator(s string) (CategoryOperator, bool) {
	op, ok := ParseTagOperator(s)
	return CategoryOperator(op), ok
}

// ParseNumericOperator recognises a comparison symbol or its word form
func ParseNumericOperator(s string) (NumericOperator, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "=", "==", "eq":
		return OperatorEqual, true
	case "!=", "<>", "ne":
		return OperatorNotEqual, true
	case ">", "gt":
		return OperatorGreaterThan, true
	case ">=", "gte":
		return OperatorGreaterOrEqual, true
	case "<", "lt":
		return OperatorLessThan, true
	case "<=", "lte":
		return OperatorLessOrEqual, true
	}
	return "", false
}

// ParseTypeHandler recognises a custom field type name
func ParseTypeHandler(s string) (TypeHandler, bool) {
	name := TypeHandler(strings.ToLower(strings.TrimSpace(s)))
	for _, h := range TypeHandlers {
		if h == name {
			return h, true
		}
	}
	return "", false
}

// IsNumeric reports whether values of the type are compared as numbers
func (h TypeHandler) IsNumeric() bool {
	return h == TypeInt || h == TypeFloat || h == TypeMonetary
}
