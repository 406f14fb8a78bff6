package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mavenviz/pkg/maven"
)

type result struct {
	Package      string       `json:"package"`
	Version      string       `json:"version"`
	URL          string       `json:"url"`
	Count        int          `json:"count"`
	Dependencies []dependency `json:"dependencies"`
}

type dependency struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
	Scope      string `json:"scope"`
}

// WriteJSON encodes a resolution result as indented JSON and writes it to w.
func WriteJSON(res *maven.Result, w io.Writer) error {
	out := result{
		Package:      res.Coordinate.String(),
		Version:      res.Version,
		URL:          res.URL,
		Count:        len(res.Dependencies),
		Dependencies: make([]dependency, len(res.Dependencies)),
	}
	for i, d := range res.Dependencies {
		out.Dependencies[i] = dependency{
			GroupID:    d.GroupID,
			ArtifactID: d.ArtifactID,
			Version:    d.Version,
			Scope:      d.Scope,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteText writes the numbered dependency listing to w.
func WriteText(res *maven.Result, w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("Direct dependencies of %s\n\n", res.Label())

	if len(res.Dependencies) == 0 {
		ew.printf("No dependencies found\n")
		return ew.err
	}
	for i, d := range res.Dependencies {
		ew.printf("%2d. %s [%s]\n", i+1, d, d.Scope)
	}
	ew.printf("\nTotal: %d\n", len(res.Dependencies))
	return ew.err
}

// Export writes res to the file at path in the given format ("text" or "json").
func Export(res *maven.Result, path, format string) error {
	write, err := writerFor(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes res to w in the given format ("text" or "json").
func Write(res *maven.Result, w io.Writer, format string) error {
	write, err := writerFor(format)
	if err != nil {
		return err
	}
	return write(res, w)
}

func writerFor(format string) (func(*maven.Result, io.Writer) error, error) {
	switch format {
	case "", "text":
		return WriteText, nil
	case "json":
		return WriteJSON, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
