package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a manifest doesn't exist in the repository.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrDecoding is returned when a response body is not valid UTF-8.
	ErrDecoding = errors.New("response is not valid UTF-8")
)

// NewHTTPClient creates an HTTP client with the standard timeout for repository requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// DecodeUTF8 converts a raw body into text, rejecting invalid UTF-8.
// A leading byte order mark is dropped.
func DecodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecoding
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
