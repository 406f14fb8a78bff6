package errors

import (
	"strings"
	"unicode"
)

// maxInputLength bounds every user-supplied identifier.
const maxInputLength = 256

// ValidatePackage validates a "groupId:artifactId" package argument.
//
// The rules mirror what the resolver needs before it can build an address:
//   - No empty names
//   - Must contain the ':' separator
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Empty segments around the separator (":artifact") are accepted; the
// coordinate parser passes them through unchanged.
func ValidatePackage(pkg string) error {
	if strings.TrimSpace(pkg) == "" {
		return New(ErrCodeInvalidInput, "package cannot be empty")
	}
	if len(pkg) > maxInputLength {
		return New(ErrCodeInvalidInput, "package too long (max %d characters)", maxInputLength)
	}
	if hasControl(pkg) {
		return New(ErrCodeInvalidInput, "package contains invalid control characters")
	}
	if !strings.Contains(pkg, ":") {
		return New(ErrCodeInvalidInput, "package must contain ':' (group:artifact), got %q", pkg)
	}
	return nil
}

// ValidateVersion rejects blank or whitespace-only versions.
func ValidateVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return New(ErrCodeInvalidInput, "version cannot be empty")
	}
	if len(version) > maxInputLength {
		return New(ErrCodeInvalidInput, "version too long (max %d characters)", maxInputLength)
	}
	if hasControl(version) {
		return New(ErrCodeInvalidInput, "version contains invalid control characters")
	}
	return nil
}

// ValidateRepository validates a repository root.
// Both URLs and filesystem paths are accepted; only emptiness and control
// characters are rejected.
func ValidateRepository(repo string) error {
	if repo == "" {
		return New(ErrCodeInvalidInput, "repository cannot be empty")
	}
	if hasControl(repo) {
		return New(ErrCodeInvalidInput, "repository contains invalid control characters")
	}
	return nil
}

// ValidateMaxDepth requires a positive depth limit.
func ValidateMaxDepth(depth int) error {
	if depth <= 0 {
		return New(ErrCodeInvalidInput, "max depth must be a positive number, got %d", depth)
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
