package commands

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/microcomp/pkg/backend"
	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/query"
)

func TestQueryCommand(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewQueryCommand(),
		"report tag:invoice,receipt cat:not:bill cat: total:>:5",
		"--size", "20", "--sort-by", "created", "--sort-dir", "DESC", "-o", "json")
	require.NoError(t, err)

	var result QueryResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))

	assert.Equal(t, 1, result.Params.PageNumber)
	assert.Equal(t, 20, result.Params.PageSize)
	assert.Equal(t, "created", result.Params.SortBy)
	assert.Equal(t, query.SortDescending, result.Params.SortDirection)
	require.NotNil(t, result.Params.Filters.FTS)
	assert.Equal(t, []string{"report"}, result.Params.Filters.FTS.Terms)
	assert.Equal(t, []query.TagGroup{
		{Values: []string{"invoice", "receipt"}, Operator: microcomp.TagOperatorAll},
	}, result.Params.Filters.Tags)
	assert.Equal(t, []query.CategoryGroup{
		{Values: []string{"bill"}, Operator: microcomp.CategoryOperatorNot},
	}, result.Params.Filters.Categories)
	assert.Equal(t, []string{"Incomplete token: cat:"}, result.Errors)
	assert.Nil(t, result.Response)
}

func TestQueryCommand_Defaults(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewQueryCommand(), "tag:invoice", "-o", "json")
	require.NoError(t, err)

	var result QueryResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, 1, result.Params.PageNumber)
	assert.Equal(t, 15, result.Params.PageSize)
	assert.Empty(t, result.Params.SortDirection)
	assert.Nil(t, result.Params.Filters.FTS)
}

func TestQueryCommand_InvalidFlags(t *testing.T) {
	setupProject(t)

	_, err := execute(t, NewQueryCommand(), "tag:x", "--sort-dir", "sideways")
	assert.ErrorIs(t, err, query.ErrInvalidSortDirection)

	_, err = execute(t, NewQueryCommand(), "tag:x", "--page", "0")
	assert.Error(t, err)
}

func TestQueryCommand_Text(t *testing.T) {
	setupProject(t)

	output, err := execute(t, NewQueryCommand(), "invoice", "cat:")
	require.NoError(t, err)
	assert.Contains(t, output, `"terms": [`)
	assert.Contains(t, output, "error: Incomplete token: cat:")
}

func TestQueryCommand_Send(t *testing.T) {
	setupProject(t)

	var received query.QueryParams
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, backend.SearchEndpoint, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1}`))
	}))
	defer srv.Close()
	t.Setenv("MICROCOMP_BACKEND_URL", srv.URL)

	output, err := execute(t, NewQueryCommand(), "tag:invoice", "--send", "-o", "json")
	require.NoError(t, err)

	var result QueryResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.NotNil(t, result.Response)
	assert.Equal(t, http.StatusOK, result.Response.StatusCode)
	assert.JSONEq(t, `{"count":1}`, string(result.Response.Body))
	assert.Equal(t, []string{"invoice"}, received.Filters.Tags[0].Values)
}

func TestQueryCommand_Copy(t *testing.T) {
	setupProject(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { writeClipboard = orig }()

	_, err := execute(t, NewQueryCommand(), "tag:invoice", "--copy")
	require.NoError(t, err)

	var params query.QueryParams
	require.NoError(t, json.Unmarshal([]byte(copied), &params))
	assert.Equal(t, microcomp.TagOperatorAll, params.Filters.Tags[0].Operator)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	_, err = execute(t, NewQueryCommand(), "tag:invoice", "--copy")
	assert.Error(t, err)
}
