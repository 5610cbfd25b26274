// Package backend sends built query parameters to the document search endpoint.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/pluqqy/microcomp/pkg/models"
	"github.com/pluqqy/microcomp/pkg/query"
)

// SearchEndpoint is the path of the search API below the backend URL
const SearchEndpoint = "/api/search/"

const (
	retryWaitMin = 250 * time.Millisecond
	retryWaitMax = 5 * time.Second
)

// ErrUnexpectedStatus is returned for non-2xx responses that are not retried
var ErrUnexpectedStatus = errors.New("unexpected response status")

// SearchResult is the raw backend response
type SearchResult struct {
	StatusCode int             `json:"status_code" yaml:"status_code"`
	Body       json.RawMessage `json:"body" yaml:"-"`
}

// Client posts query parameters to the backend search endpoint
type Client struct {
	BaseURI    string
	HTTPClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a client that retries transient failures
func NewClient(settings models.BackendSettings, log zerolog.Logger) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = settings.RetryMax
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.Logger = leveledLogger{log: log}
	retryClient.HTTPClient = &http.Client{
		Timeout: time.Duration(settings.TimeoutSeconds) * time.Second,
	}
	return &Client{
		BaseURI:    settings.URL,
		HTTPClient: retryClient.StandardClient(),
		log:        log,
	}
}

// Search sends params to the search endpoint and returns the response body
func (c *Client) Search(ctx context.Context, params query.QueryParams) (*SearchResult, error) {
	req, err := c.prepareRequest(ctx, http.MethodPost, SearchEndpoint, params)
	if err != nil {
		return nil, err
	}
	return c.sendRequest(req)
}

// prepareRequest returns a new JSON request for the endpoint below BaseURI
func (c *Client) prepareRequest(ctx context.Context, method, endpoint string, body any) (*http.Request, error) {
	uri, err := url.JoinPath(c.BaseURI, endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", c.BaseURI, err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json; charset=utf-8")
	return req, nil
}

func (c *Client) sendRequest(req *http.Request) (*SearchResult, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("url", req.URL.String()).Int("status", resp.StatusCode).Msg("search response")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	result := &SearchResult{StatusCode: resp.StatusCode}
	if len(bytes.TrimSpace(body)) > 0 {
		if !json.Valid(body) {
			return nil, fmt.Errorf("backend returned invalid json")
		}
		result.Body = body
	}
	return result, nil
}

// leveledLogger routes retryablehttp logging to zerolog
type leveledLogger struct {
	log zerolog.Logger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.log.Error().Fields(kv).Msg(msg) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.log.Debug().Fields(kv).Msg(msg) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.log.Trace().Fields(kv).Msg(msg) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.log.Warn().Fields(kv).Msg(msg) }
