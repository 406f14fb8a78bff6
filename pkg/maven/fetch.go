package maven

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/matzehuels/mavenviz/pkg/errors"
	"github.com/matzehuels/mavenviz/pkg/integrations"
)

// UserAgent identifies mavenviz to remote repositories.
const UserAgent = "Maven-Dependency-Visualizer/1.0"

// Fetcher retrieves the text of a manifest at an address produced by [POMURL].
//
// Implementations perform a single attempt. Every failure is an
// [errors.RetrievalError].
type Fetcher interface {
	Fetch(ctx context.Context, address string) (string, error)
}

// NewFetcher picks the transport for repo: local files for test-mode
// repositories and non-URL roots, HTTP otherwise.
func NewFetcher(repo Repository) Fetcher {
	if repo.TestMode || !repo.IsRemote() {
		return FileFetcher{}
	}
	return NewHTTPFetcher()
}

// HTTPFetcher downloads manifests with one GET request per call.
type HTTPFetcher struct {
	client *integrations.Client
}

// NewHTTPFetcher creates an HTTPFetcher that sends the mavenviz User-Agent
// and gives up after the shared 30 second client timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: integrations.NewClient(map[string]string{"User-Agent": UserAgent}),
	}
}

// Fetch implements [Fetcher].
func (f *HTTPFetcher) Fetch(ctx context.Context, address string) (string, error) {
	return f.client.GetText(ctx, address)
}

// FileFetcher reads manifests from the local filesystem. Addresses may be
// plain paths or file:// URLs.
type FileFetcher struct{}

// Fetch implements [Fetcher].
func (FileFetcher) Fetch(ctx context.Context, address string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &errors.RetrievalError{URL: address, Cause: err}
	}

	data, err := os.ReadFile(localPath(address))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", integrations.ErrNotFound, err)
		}
		return "", &errors.RetrievalError{URL: address, Cause: err}
	}

	text, err := integrations.DecodeUTF8(data)
	if err != nil {
		return "", &errors.RetrievalError{URL: address, Cause: err}
	}
	return text, nil
}

func localPath(address string) string {
	if u, err := url.Parse(address); err == nil && u.Scheme == "file" {
		return filepath.FromSlash(u.Path)
	}
	return filepath.FromSlash(address)
}
