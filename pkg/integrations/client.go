package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/mavenviz/pkg/errors"
	"github.com/matzehuels/mavenviz/pkg/observability"
)

// Client provides shared HTTP functionality for repository clients.
// It applies common request headers and turns every failure into an
// [errors.RetrievalError]. Requests are attempted exactly once.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// GetText performs an HTTP GET request and returns the response body as a
// UTF-8 string. Anything other than 200 OK is an error.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	return c.GetTextWithHeaders(ctx, url, nil)
}

// GetTextWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetTextWithHeaders(ctx context.Context, url string, headers map[string]string) (string, error) {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", &errors.RetrievalError{URL: url, Cause: fmt.Errorf("%w: %w", ErrNetwork, err)}
	}
	text, err := DecodeUTF8(data)
	if err != nil {
		return "", &errors.RetrievalError{URL: url, Cause: err}
	}
	return text, nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errors.RetrievalError{URL: url, Cause: err}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, &errors.RetrievalError{URL: url, Cause: fmt.Errorf("%w: %w", ErrNetwork, err)}
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(url, resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(url string, resp *http.Response) error {
	code := resp.StatusCode
	if code == http.StatusOK {
		return nil
	}

	re := &errors.RetrievalError{URL: url, StatusCode: code, Status: reason(resp)}
	switch {
	case code == http.StatusNotFound:
		re.Cause = ErrNotFound
	case code >= 500:
		re.Cause = ErrNetwork
	}
	return re
}

// reason extracts the reason phrase from a status line such as "404 Not Found".
func reason(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode)
	}
	return phrase
}
