package maven

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/mavenviz/pkg/errors"
)

// POMNamespace is the XML namespace of Maven 4.0.0 project descriptors.
const POMNamespace = "http://maven.apache.org/POM/4.0.0"

const (
	// NotAvailable is the version reported when a dependency declares none.
	NotAvailable = "N/A"

	// DefaultScope is the scope reported when a dependency declares none.
	DefaultScope = "compile"
)

// Dependency is a single entry of a POM's dependency list.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string // NotAvailable when omitted
	Scope      string // DefaultScope when omitted
}

// String returns "groupId:artifactId:version".
func (d Dependency) String() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// ParseDependencies extracts the declared dependencies from POM text.
//
// Elements are matched only in [POMNamespace]. The dependency list is the
// first <dependencies> element below the root in document order, so a
// <dependencyManagement> section placed before the project's own list wins.
// A document without any dependency list yields an empty, non-nil slice.
//
// Entries without a groupId or artifactId are skipped. Missing versions
// become [NotAvailable] and missing scopes become [DefaultScope]. Order
// follows the document.
//
// Text that is not well-formed XML yields an error with code
// [errors.ErrCodeManifestParse] and no dependencies.
func ParseDependencies(text string) ([]Dependency, error) {
	root, err := parseDocument(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifestParse, err, "parse POM")
	}

	deps := []Dependency{}
	list := findDependencies(root)
	if list == nil {
		return deps, nil
	}

	for i := range list.Children {
		el := &list.Children[i]
		if el.XMLName != pomName("dependency") {
			continue
		}
		groupID := el.field("groupId")
		artifactID := el.field("artifactId")
		if groupID == "" || artifactID == "" {
			continue
		}
		deps = append(deps, Dependency{
			GroupID:    groupID,
			ArtifactID: artifactID,
			Version:    orDefault(el.field("version"), NotAvailable),
			Scope:      orDefault(el.field("scope"), DefaultScope),
		})
	}
	return deps, nil
}

// element is a generic XML node.
type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// field returns the trimmed text of the first child with the given local
// name in the POM namespace.
func (e *element) field(local string) string {
	name := pomName(local)
	for i := range e.Children {
		if e.Children[i].XMLName == name {
			return strings.TrimSpace(e.Children[i].Text)
		}
	}
	return ""
}

func pomName(local string) xml.Name {
	return xml.Name{Space: POMNamespace, Local: local}
}

func findDependencies(root *element) *element {
	return findDescendant(root, pomName("dependencies"))
}

// findDescendant walks the tree depth-first in document order. The root
// itself is not a candidate.
func findDescendant(e *element, name xml.Name) *element {
	for i := range e.Children {
		c := &e.Children[i]
		if c.XMLName == name {
			return c
		}
		if found := findDescendant(c, name); found != nil {
			return found
		}
	}
	return nil
}

// parseDocument decodes exactly one root element. Only whitespace, comments,
// processing instructions and a DOCTYPE may surround it.
func parseDocument(text string) (*element, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	// text is already UTF-8 whatever the declaration says.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }

	start, err := nextStart(dec)
	if err != nil {
		return nil, err
	}

	var root element
	if err := dec.DecodeElement(&root, start); err != nil {
		return nil, err
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return &root, nil
		}
		if err != nil {
			return nil, err
		}
		if !isMisc(tok) {
			return nil, fmt.Errorf("junk after document element at offset %d", dec.InputOffset())
		}
	}
}

func nextStart(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("no root element found")
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
		if !isMisc(tok) {
			return nil, fmt.Errorf("unexpected content before root element at offset %d", dec.InputOffset())
		}
	}
}

func isMisc(tok xml.Token) bool {
	switch t := tok.(type) {
	case xml.CharData:
		return len(bytes.TrimSpace(t)) == 0
	case xml.Comment, xml.ProcInst:
		return true
	case xml.Directive:
		return bytes.HasPrefix(bytes.TrimSpace(t), []byte("DOCTYPE"))
	default:
		return false
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
