package maven

import (
	"context"
	"time"

	"github.com/matzehuels/mavenviz/pkg/observability"
)

// Result is the outcome of resolving one package version.
type Result struct {
	Coordinate   Coordinate
	Version      string
	URL          string       // Address the POM was read from
	Dependencies []Dependency // Declaration order; empty when none are declared
}

// Label returns "groupId:artifactId:version".
func (r *Result) Label() string {
	return r.Coordinate.String() + ":" + r.Version
}

// Resolver runs the resolution pipeline: address, fetch, parse.
// It holds no state between calls.
type Resolver struct {
	fetcher Fetcher
}

// NewResolver creates a Resolver that retrieves manifests with f.
func NewResolver(f Fetcher) *Resolver {
	return &Resolver{fetcher: f}
}

// Resolve fetches the POM addressed by ref and returns its direct
// dependencies. Any failure aborts the run; no partial result is returned.
func (r *Resolver) Resolve(ctx context.Context, ref ManifestRef) (*Result, error) {
	hooks := observability.Pipeline()
	label, url := ref.Label(), ref.URL()
	start := time.Now()
	hooks.OnResolveStart(ctx, label, url)

	res, err := r.resolve(ctx, ref, url)

	count := 0
	if res != nil {
		count = len(res.Dependencies)
	}
	hooks.OnResolveComplete(ctx, label, count, time.Since(start), err)
	return res, err
}

func (r *Resolver) resolve(ctx context.Context, ref ManifestRef, url string) (*Result, error) {
	fetchStart := time.Now()
	text, err := r.fetcher.Fetch(ctx, url)
	observability.Pipeline().OnFetchComplete(ctx, url, len(text), time.Since(fetchStart), err)
	if err != nil {
		return nil, err
	}

	deps, err := ParseDependencies(text)
	if err != nil {
		return nil, err
	}
	return &Result{
		Coordinate:   ref.Coordinate,
		Version:      ref.Version,
		URL:          url,
		Dependencies: deps,
	}, nil
}

// Resolve parses pkg, picks a transport for repo with [NewFetcher] and
// resolves the given version.
func Resolve(ctx context.Context, pkg, version string, repo Repository) (*Result, error) {
	ref, err := NewManifestRef(pkg, version, repo)
	if err != nil {
		return nil, err
	}
	return NewResolver(NewFetcher(repo)).Resolve(ctx, ref)
}
