package models

import (
	"fmt"
	"io"
	"strings"

	"github.com/pluqqy/microcomp/pkg/microcomp"
)

// TokenView is the serialized form of a token. Type names the variant so
// clients can tell tokens apart without knowing Go types.
type TokenView struct {
	Type        microcomp.Kind `json:"type" yaml:"type"`
	Raw         string         `json:"raw" yaml:"raw"`
	Canonical   string         `json:"canonical" yaml:"canonical"`
	Value       any            `json:"value,omitempty" yaml:"value,omitempty"`
	Values      []string       `json:"values,omitempty" yaml:"values,omitempty"`
	Operator    string         `json:"operator,omitempty" yaml:"operator,omitempty"`
	FieldName   string         `json:"field_name,omitempty" yaml:"field_name,omitempty"`
	TypeHandler string         `json:"type_handler,omitempty" yaml:"type_handler,omitempty"`
}

// ResultView is the serialized form of a parse result
type ResultView struct {
	Input string                `json:"input" yaml:"input"`
	Token *TokenView            `json:"token,omitempty" yaml:"token,omitempty"`
	Error *microcomp.ParseError `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewTokenView flattens a token for output
func NewTokenView(t microcomp.Token) *TokenView {
	if t == nil {
		return nil
	}

	view := &TokenView{
		Type:      t.Kind(),
		Raw:       t.Source(),
		Canonical: microcomp.Format(t),
	}

	switch tok := t.(type) {
	case *microcomp.FreeTextToken:
		view.Value = tok.Value
	case *microcomp.TagToken:
		view.Values = tok.Values
		view.Operator = string(tok.Operator)
	case *microcomp.CategoryToken:
		view.Values = tok.Values
		view.Operator = string(tok.Operator)
	case *microcomp.CustomFieldToken:
		view.FieldName = tok.FieldName
		view.TypeHandler = string(tok.TypeHandler)
		view.Operator = string(tok.Operator)
		view.Value = tok.Value
	}

	return view
}

// NewResultView flattens a parse result for output
func NewResultView(input string, r microcomp.ParseResult) ResultView {
	return ResultView{
		Input: input,
		Token: NewTokenView(r.Token),
		Error: r.Error,
	}
}

// ResultViews is a list of parse results that renders as text
type ResultViews []ResultView

// RenderText writes one line per result
func (rs ResultViews) RenderText(w io.Writer) error {
	for _, r := range rs {
		if err := r.RenderText(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderText writes the token kind and details, or the parse error
func (r ResultView) RenderText(w io.Writer) error {
	if r.Error != nil {
		_, err := fmt.Fprintf(w, "error       %s\n", r.Error.Error())
		return err
	}
	if r.Token == nil {
		return nil
	}

	var details []string
	if r.Token.FieldName != "" {
		details = append(details, "field="+r.Token.FieldName, "type="+r.Token.TypeHandler)
	}
	if r.Token.Operator != "" {
		details = append(details, "op="+r.Token.Operator)
	}
	if len(r.Token.Values) > 0 {
		details = append(details, "values="+strings.Join(r.Token.Values, "|"))
	} else if r.Token.Value != nil {
		details = append(details, fmt.Sprintf("value=%v", r.Token.Value))
	}

	_, err := fmt.Fprintf(w, "%-11s %s\n", r.Token.Type, strings.Join(details, " "))
	return err
}
