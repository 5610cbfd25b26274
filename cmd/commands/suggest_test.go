package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCommand(t *testing.T) {
	setupProject(t)

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"keywords", "report ta", []string{"tag:", "total:"}},
		{"tag values", "tag:inv", []string{"invoice"}},
		{"quoted multi word tag", "tag:invoice, blu", []string{`"blue sky"`}},
		{"category operators and values", "cat:", []string{"not:", "any:", "bill", "contract"}},
		{"custom field operators", "total:>", []string{">=:"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, NewSuggestCommand(), tt.line, "-o", "json")
			require.NoError(t, err)

			var result SuggestResult
			require.NoError(t, json.Unmarshal([]byte(output), &result))

			var texts []string
			for _, s := range result.Suggestions {
				texts = append(texts, s.Text)
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestSuggestCommand_Apply(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewSuggestCommand(), "report tag:inv", "--apply", "1")
	require.NoError(t, err)
	assert.Equal(t, "report tag:invoice\n", output)

	_, err = execute(t, NewSuggestCommand(), "tag:inv", "--apply", "5")
	assert.Error(t, err)
}

func TestSuggestCommand_Text(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewSuggestCommand(), "tag:zzz")
	require.NoError(t, err)
	assert.Equal(t, "No suggestions\n", output)

	output, err = execute(t, NewSuggestCommand(), "cat:bi")
	require.NoError(t, err)
	assert.Contains(t, output, "SUGGESTION")
	assert.Contains(t, output, "bill")
}
