package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteCommand(t *testing.T) {
	tests := []struct {
		text       string
		suggestion string
		index      int
		result     string
	}{
		{"report tag:inv", "invoice", 11, "report tag:invoice"},
		{"with tag:", "tag:blue sky", 5, "with tag:blue sky"},
		{"abcabc", "abc", 3, "abcabc"},
		{"hello", "world", -1, "helloworld"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			output, err := execute(t, NewCompleteCommand(), tt.text, tt.suggestion, "-o", "json")
			require.NoError(t, err)

			var result CompleteResult
			require.NoError(t, json.Unmarshal([]byte(output), &result))
			assert.Equal(t, tt.index, result.Index)
			assert.Equal(t, tt.result, result.Result)
		})
	}
}

func TestCompleteCommand_Text(t *testing.T) {
	output, err := execute(t, NewCompleteCommand(), "tag:inv", "invoice")
	require.NoError(t, err)
	assert.Equal(t, "tag:invoice\n", output)

	_, err = execute(t, NewCompleteCommand(), "only-one")
	assert.Error(t, err)
}
