package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atomicstack/tokencalc/internal/suggest"
	"github.com/tidwall/gjson"
)

const (
	// DefaultEndpoint serves the demo autocomplete list.
	DefaultEndpoint = "https://652f91320b8d8ddac0b2b62b.mockapi.io/autocomplete"
	DefaultTimeout  = 10 * time.Second

	genericFetchError = "Error fetching data"
)

var errNoEndpoint = errors.New("suggestion endpoint not configured")

// Fetcher loads the full candidate list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]suggest.Record, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchError reports a failed fetch. Message is what the user sees: the
// response body's "message" field when present, otherwise a generic text.
type FetchError struct {
	Message string
	Status  int
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Option configures the HTTP client.
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(client httpDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// Client fetches suggestion records from a JSON endpoint.
type Client struct {
	endpoint   string
	httpClient httpDoer
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch performs a single GET and decodes the record list. There is no retry.
func (c *Client) Fetch(ctx context.Context) ([]suggest.Record, error) {
	if c.endpoint == "" {
		return nil, &FetchError{Message: genericFetchError, Err: errNoEndpoint}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Message: genericFetchError, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: genericFetchError, Err: fmt.Errorf("suggestion request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Message: genericFetchError, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return nil, &FetchError{
			Message: errorMessage(body),
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("suggestion request failed: status %s", resp.Status),
		}
	}

	records, err := DecodeRecords(body)
	if err != nil {
		return nil, &FetchError{Message: genericFetchError, Status: resp.StatusCode, Err: err}
	}
	return records, nil
}

func errorMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if msg := strings.TrimSpace(gjson.GetBytes(body, "message").String()); msg != "" {
			return msg
		}
	}
	return genericFetchError
}
