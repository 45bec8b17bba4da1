// Package transport provides the shared HTTP client used by the
// Wikipedia and Wikidata API clients. It applies the common headers
// the Wikimedia APIs expect, most importantly a descriptive User-Agent.
package transport

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"

	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality for the upstream APIs.
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a new transport client with the default timeout and user agent.
func New() *Client {
	return NewWithClient(&http.Client{Timeout: DefaultHTTPTimeout})
}

// NewWithClient creates a transport client around an existing http.Client.
// Used by tests to point the client at a local server.
func NewWithClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &Client{
		http:      httpClient,
		userAgent: constants.UserAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent with every request.
func (c *Client) SetUserAgent(userAgent string) {
	if userAgent != "" {
		c.userAgent = userAgent
	}
}

// Do performs an HTTP request with the common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")
	return c.http.Do(req)
}

// Get performs a GET request against the given URL.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WrapValidation("url", err)
	}
	return c.Do(req)
}

// GetJSON performs a GET request with the given query parameters and
// decodes the JSON response into target. The source name is carried
// into any resulting error.
func (c *Client) GetJSON(ctx context.Context, source, endpoint string, params url.Values, target any) error {
	rawURL := endpoint
	if len(params) > 0 {
		rawURL = endpoint + "?" + params.Encode()
	}

	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.NewTimeoutError("GET "+endpoint, c.http.Timeout.String(), err.Error())
		}
		if stderrors.Is(err, context.Canceled) {
			return err
		}
		return errors.WrapAPI(source, 0, err)
	}

	return DecodeResponse(source, resp, target)
}
