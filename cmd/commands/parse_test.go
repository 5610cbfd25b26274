package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
)

func TestParseCommand_Text(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewParseCommand(), "tag:not:invoice,draft", "cat:", "report")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "tag "))
	assert.Contains(t, lines[0], "op=not values=invoice|draft")
	assert.Equal(t, "error       Incomplete token: cat:", lines[1])
	assert.Contains(t, lines[2], "value=report")
}

func TestParseCommand_JSON(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewParseCommand(), "total:>=:12.5", "-o", "json")
	require.NoError(t, err)

	var results []models.ResultView
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Token)
	assert.Equal(t, microcomp.KindCustomField, results[0].Token.Type)
	assert.Equal(t, "total", results[0].Token.FieldName)
	assert.Equal(t, "monetary", results[0].Token.TypeHandler)
	assert.Equal(t, ">=", results[0].Token.Operator)
	assert.Equal(t, 12.5, results[0].Token.Value)
}

func TestParseCommand_Line(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewParseCommand(), "--line", "report tag:invoice, receipt", "cat:", "-o", "json")
	require.NoError(t, err)

	var results []models.ResultView
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "report", results[0].Input)
	assert.Equal(t, "tag:invoice, receipt", results[1].Input)
	assert.Equal(t, []string{"invoice", "receipt"}, results[1].Token.Values)
	assert.Nil(t, results[2].Token)
	require.NotNil(t, results[2].Error)
	assert.Equal(t, microcomp.MessageIncompleteToken, results[2].Error.Message)
}
