package microcomp

import (
	"fmt"
	"strings"
)

// Format renders a token back into canonical search syntax. Implicit operators are
// omitted and values that would not survive splitting are quoted, so parsing the
// result yields an equivalent token.
func Format(t Token) string {
	switch tok := t.(type) {
	case *FreeTextToken:
		return tok.Value
	case *TagToken:
		return formatList("tag", string(tok.Operator), string(TagOperatorAll), tok.Values)
	case *CategoryToken:
		return formatList("cat", string(tok.Operator), string(CategoryOperatorAll), tok.Values)
	case *CustomFieldToken:
		var b strings.Builder
		b.WriteString("cf:")
		b.WriteString(Quote(tok.FieldName))
		b.WriteString(":")
		if tok.Operator != OperatorEqual && tok.Operator != "" {
			b.WriteString(string(tok.Operator))
			b.WriteString(":")
		}
		b.WriteString(Quote(fmt.Sprint(tok.Value)))
		return b.String()
	}
	return t.Source()
}

func formatList(keyword, op, implicit string, values []string) string {
	var b strings.Builder
	b.WriteString(keyword)
	b.WriteString(":")
	if op != implicit && op != "" {
		b.WriteString(op)
		b.WriteString(":")
	}
	for i, v := range values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(Quote(v))
	}
	return b.String()
}

// Quote wraps v in quotes when it contains a separator or a quote character
func Quote(v string) string {
	if !strings.ContainsAny(v, " \t,:'\"") {
		return v
	}
	if strings.Contains(v, `"`) {
		return "'" + v + "'"
	}
	return `"` + v + `"`
}
