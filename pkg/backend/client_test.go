package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/microcomp/pkg/microcomp"
	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/query"
)

func testSettings(url string) models.BackendSettings {
	return models.BackendSettings{URL: url, RetryMax: 2, TimeoutSeconds: 5}
}

func testParams() query.QueryParams {
	return query.BuildSearchQueryParams(query.SearchInput{
		Tokens:     []microcomp.Token{&microcomp.TagToken{Values: []string{"invoice"}, Operator: microcomp.TagOperatorAll}},
		PageNumber: 1,
		PageSize:   10,
	})
}

func TestClient_Search(t *testing.T) {
	var received query.QueryParams
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, SearchEndpoint, r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 1, "results": [{"id": 7}]}`))
	}))
	defer server.Close()

	client := NewClient(testSettings(server.URL), zerolog.Nop())
	result, err := client.Search(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, testParams(), received)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.JSONEq(t, `{"count": 1, "results": [{"id": 7}]}`, string(result.Body))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"count": 0}`))
	}))
	defer server.Close()

	client := NewClient(testSettings(server.URL), zerolog.Nop())
	result, err := client.Search(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.JSONEq(t, `{"count": 0}`, string(result.Body))
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad filters", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testSettings(server.URL), zerolog.Nop())
	_, err := client.Search(context.Background(), testParams())

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	}))
	defer server.Close()

	client := NewClient(testSettings(server.URL), zerolog.Nop())
	_, err := client.Search(context.Background(), testParams())
	assert.Error(t, err)
}

func TestClient_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(testSettings(server.URL), zerolog.Nop())
	result, err := client.Search(context.Background(), testParams())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, result.StatusCode)
	assert.Nil(t, result.Body)
}

func TestClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(testSettings(server.URL), zerolog.Nop())
	_, err := client.Search(ctx, testParams())
	assert.Error(t, err)
}
