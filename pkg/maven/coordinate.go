package maven

import (
	"strings"

	"github.com/matzehuels/mavenviz/pkg/errors"
)

// Coordinate identifies a Maven package independent of its version.
type Coordinate struct {
	GroupID    string // e.g. "org.springframework"
	ArtifactID string // e.g. "spring-core"
}

// ParseCoordinate splits a "groupId:artifactId" string on its first colon.
// Further colons stay in the artifact segment and both segments are trimmed
// of surrounding whitespace. Empty segments are returned as-is.
//
// A string without any colon yields an error with code
// [errors.ErrCodeMalformedCoordinate].
func ParseCoordinate(raw string) (Coordinate, error) {
	group, artifact, ok := strings.Cut(raw, ":")
	if !ok {
		return Coordinate{}, errors.New(errors.ErrCodeMalformedCoordinate,
			"package must contain ':' (group:artifact), got %q", raw)
	}
	return Coordinate{
		GroupID:    strings.TrimSpace(group),
		ArtifactID: strings.TrimSpace(artifact),
	}, nil
}

// String returns the "groupId:artifactId" form.
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID
}
