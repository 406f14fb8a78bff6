package maven

import "strings"

// Repository is the root of a Maven-layout repository.
//
// Root is either a URL ("https://repo1.maven.org/maven2") or a filesystem
// path. TestMode marks a local or synthetic repository whose manifests are
// read from disk instead of being downloaded.
type Repository struct {
	Root     string
	TestMode bool
}

// NewRepository returns a Repository with one trailing slash removed from root.
func NewRepository(root string, testMode bool) Repository {
	return Repository{Root: strings.TrimSuffix(root, "/"), TestMode: testMode}
}

// IsRemote reports whether the root is an http or https URL.
func (r Repository) IsRemote() bool {
	lower := strings.ToLower(r.Root)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ManifestRef fully determines where a package's POM lives.
type ManifestRef struct {
	Coordinate Coordinate
	Version    string
	Repository Repository
}

// NewManifestRef parses pkg as a coordinate and pairs it with version and repo.
func NewManifestRef(pkg, version string, repo Repository) (ManifestRef, error) {
	c, err := ParseCoordinate(pkg)
	if err != nil {
		return ManifestRef{}, err
	}
	return ManifestRef{Coordinate: c, Version: version, Repository: repo}, nil
}

// URL returns the manifest address within the repository.
func (r ManifestRef) URL() string {
	return POMURL(r.Coordinate, r.Version, r.Repository.Root)
}

// Label returns the "groupId:artifactId:version" display name.
func (r ManifestRef) Label() string {
	return r.Coordinate.String() + ":" + r.Version
}

// POMURL builds the address of a POM following the standard Maven layout:
//
//	<root>/<group with dots as slashes>/<artifactId>/<version>/<artifactId>-<version>.pom
//
// One trailing slash on root is ignored, so "https://example.com/repo/" and
// "https://example.com/repo" produce the same address.
func POMURL(c Coordinate, version, root string) string {
	groupPath := strings.ReplaceAll(c.GroupID, ".", "/")
	filename := c.ArtifactID + "-" + version + ".pom"
	root = strings.TrimSuffix(root, "/")
	return strings.Join([]string{root, groupPath, c.ArtifactID, version, filename}, "/")
}
