package suggest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/vocab"
)

func testRegistry() *vocab.Registry {
	return vocab.NewMemoryRegistry(models.Vocabulary{
		Tags: []models.Tag{
			{Name: "invoice"},
			{Name: "receipt"},
			{Name: "blue sky"},
			{Name: "notes"},
			{Name: "Paid"},
		},
		Categories: []models.Category{
			{Name: "bill"},
			{Name: "contract"},
		},
		CustomFields: []models.CustomField{
			{Name: "total", Type: microcomp.TypeMonetary},
			{Name: "due date", Type: microcomp.TypeDate},
		},
	})
}

func texts(suggestions []Suggestion) []string {
	result := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, s.Text)
	}
	return result
}

func TestSuggester_Suggest(t *testing.T) {
	s := New(testRegistry(), 10)

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "empty line offers keywords",
			line:     "",
			expected: []string{"tag:", "cat:", "cf:", "total:"},
		},
		{
			name:     "keyword prefix",
			line:     "report ta",
			expected: []string{"tag:", "total:"},
		},
		{
			name:     "keyword contains match comes last",
			line:     "a",
			expected: []string{"tag:", "cat:", "total:"},
		},
		{
			name:     "free text without match",
			line:     "invoice",
			expected: []string{},
		},
		{
			name:     "empty tag value offers operators then names",
			line:     "tag:",
			expected: []string{"not:", "any:", "invoice", "receipt", `"blue sky"`, "notes", "Paid"},
		},
		{
			name:     "operator prefix and value prefix",
			line:     "tag:n",
			expected: []string{"not:", "notes", "invoice"},
		},
		{
			name:     "operator typed in full is not suggested again",
			line:     "tag:not",
			expected: []string{"notes"},
		},
		{
			name:     "values after operator",
			line:     "tag:not:re",
			expected: []string{"receipt"},
		},
		{
			name:     "prefix before contains",
			line:     "tag:i",
			expected: []string{"invoice", "receipt", "Paid"},
		},
		{
			name:     "committed values are excluded",
			line:     "tag:invoice, receipt,",
			expected: []string{`"blue sky"`, "notes", "Paid"},
		},
		{
			name:     "case insensitive",
			line:     "tag:PA",
			expected: []string{"Paid"},
		},
		{
			name:     "quoted in-progress value",
			line:     `tag:"blu`,
			expected: []string{`"blue sky"`},
		},
		{
			name:     "categories",
			line:     "cat:any:c",
			expected: []string{"contract"},
		},
		{
			name:     "custom field names",
			line:     "cf:",
			expected: []string{"total:", `"due date":`},
		},
		{
			name:     "custom field operators",
			line:     "cf:total:>",
			expected: []string{">=:"},
		},
		{
			name:     "registered field keyword offers operators",
			line:     "total:",
			expected: []string{"=:", "!=:", ">:", ">=:", "<:", "<=:"},
		},
		{
			name:     "custom field value has no suggestions",
			line:     "cf:total:>:5",
			expected: []string{},
		},
		{
			name:     "unknown keyword",
			line:     "http://example",
			expected: []string{},
		},
		{
			name:     "only the last segment counts",
			line:     "tag:invoice cat:b",
			expected: []string{"bill"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions, err := s.Suggest(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, texts(suggestions))
		})
	}
}

func TestSuggester_Max(t *testing.T) {
	s := New(testRegistry(), 2)

	suggestions, err := s.Suggest("tag:")
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)

	assert.Equal(t, DefaultMaxSuggestions, New(testRegistry(), 0).max)
}

type failingSource struct{}

func (failingSource) Names(microcomp.Kind) ([]string, error) {
	return nil, errors.New("boom")
}

func TestSuggester_SourceError(t *testing.T) {
	_, err := New(failingSource{}, 0).Suggest("tag:x")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	s := New(testRegistry(), 10)

	tests := []struct {
		line     string
		pick     string
		expected string
	}{
		{"report ta", "tag:", "report tag:"},
		{"a", "cat:", "cat:"},
		{"tag:inv", "invoice", "tag:invoice"},
		{"tag:invoice, re", "receipt", "tag:invoice, receipt"},
		{"tag:invoice,", "receipt", "tag:invoice,receipt"},
		{"tag:n", "not:", "tag:not:"},
		{"tag:PA", "Paid", "tag:Paid"},
		{"tag:voice", "invoice", "tag:invoice"},
		{`tag:"blu`, `"blue sky"`, `tag:"blue sky"`},
		{"cf:to", "total:", "cf:total:"},
		{"cf:total:>", ">=:", "cf:total:>=:"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			suggestions, err := s.Suggest(tt.line)
			require.NoError(t, err)

			var chosen *Suggestion
			for i := range suggestions {
				if suggestions[i].Text == tt.pick {
					chosen = &suggestions[i]
				}
			}
			require.NotNil(t, chosen, "suggestion %q not offered for %q", tt.pick, tt.line)
			assert.Equal(t, tt.expected, Apply(tt.line, *chosen))
		})
	}
}

func TestApply_CompletedTokenParses(t *testing.T) {
	line := Apply(`tag:"blu`, Suggestion{Text: `"blue sky"`, Type: TypeValue, Fragment: `"blu`})

	result := microcomp.ParseCompleteToken(line)
	require.True(t, result.OK())
	assert.Equal(t, []string{"blue sky"}, result.Token.(*microcomp.TagToken).Values)
}
