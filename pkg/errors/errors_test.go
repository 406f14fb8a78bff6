package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedCoordinate, "missing separator: %s", "guava")

	if err.Code != ErrCodeMalformedCoordinate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedCoordinate)
	}

	if err.Message != "missing separator: guava" {
		t.Errorf("Message = %v, want %v", err.Message, "missing separator: guava")
	}

	expected := "MALFORMED_COORDINATE: missing separator: guava"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("XML syntax error on line 3")
	err := Wrap(ErrCodeManifestParse, cause, "parse POM")

	if err.Code != ErrCodeManifestParse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeManifestParse)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeRetrieval,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeManifestParse, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeManifestParse,
			expected: true,
		},
		{
			name:     "retrieval error",
			err:      &RetrievalError{URL: "https://example.com/a.pom", StatusCode: 404, Status: "Not Found"},
			code:     ErrCodeRetrieval,
			expected: true,
		},
		{
			name:     "retrieval error behind fmt wrap",
			err:      fmt.Errorf("resolve: %w", &RetrievalError{URL: "x", Cause: errors.New("timeout")}),
			code:     ErrCodeRetrieval,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMalformedCoordinate, "test"),
			expected: ErrCodeMalformedCoordinate,
		},
		{
			name:     "coded type",
			err:      &RetrievalError{URL: "x"},
			expected: ErrCodeRetrieval,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeManifestParse, errors.New("unexpected EOF"), "parse POM"),
			expected: "parse POM: unexpected EOF",
		},
		{
			name:     "retrieval error",
			err:      &RetrievalError{URL: "https://example.com/a.pom", StatusCode: 404, Status: "Not Found"},
			expected: "fetch https://example.com/a.pom: HTTP 404 - Not Found",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRetrievalError(t *testing.T) {
	t.Run("protocol failure", func(t *testing.T) {
		err := &RetrievalError{URL: "https://example.com/a.pom", StatusCode: 503, Status: "Service Unavailable"}
		expected := "RETRIEVAL_FAILED: fetch https://example.com/a.pom: HTTP 503 - Service Unavailable"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &RetrievalError{URL: "https://example.com/a.pom", Cause: cause}
		expected := "RETRIEVAL_FAILED: fetch https://example.com/a.pom: connection refused"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
		if !errors.Is(err, cause) {
			t.Error("errors.Is(err, cause) = false, want true")
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &RetrievalError{}
		if err.Code() != ErrCodeRetrieval {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeRetrieval)
		}
	})

	t.Run("as target", func(t *testing.T) {
		var err error = Wrap(ErrCodeInternal, &RetrievalError{StatusCode: 404}, "outer")
		var re *RetrievalError
		if !errors.As(err, &re) {
			t.Fatal("errors.As did not find RetrievalError")
		}
		if re.StatusCode != 404 {
			t.Errorf("StatusCode = %d, want 404", re.StatusCode)
		}
	})
}
