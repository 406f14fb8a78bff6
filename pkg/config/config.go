// Package config loads and validates the settings of a mavenviz run.
//
// Settings come from four sources, lowest precedence first:
//
//  1. Built-in defaults ([Default])
//  2. A TOML file, either given explicitly or [DefaultFile] in the working directory
//  3. MAVENVIZ_* environment variables, after a .env file has been loaded
//  4. Command-line flags, applied by the CLI on top of [Load]
//
// Only Package, Repository, Version and TestMode drive resolution. MaxDepth
// and Filter are accepted, validated and reported so existing configuration
// files keep working.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/mavenviz/pkg/errors"
)

// DefaultFile is read when no configuration file is named explicitly.
const DefaultFile = "mavenviz.toml"

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "MAVENVIZ_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultMaxDepth is the depth limit reported when none is configured.
const DefaultMaxDepth = 10

// Config holds the effective settings of one run.
type Config struct {
	Package    string `toml:"package"`    // "groupId:artifactId"
	Repository string `toml:"repository"` // URL or filesystem path
	Version    string `toml:"version"`
	TestMode   bool   `toml:"test_mode"` // read manifests from disk
	MaxDepth   int    `toml:"max_depth"`
	Filter     string `toml:"filter"`
	Output     string `toml:"output"` // empty means stdout
	Format     string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{MaxDepth: DefaultMaxDepth, Format: FormatText}
}

// Load builds a Config from defaults, the TOML file at path and the
// environment. An empty path falls back to [DefaultFile] when it exists.
// A .env file in the working directory is loaded first; variables already
// set in the process environment win over it.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the settings found in the TOML file at path.
// Keys the file does not mention are left untouched; unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "config file %s not found", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"PACKAGE":    &c.Package,
		"REPOSITORY": &c.Repository,
		"VERSION":    &c.Version,
		"FILTER":     &c.Filter,
		"OUTPUT":     &c.Output,
		"FORMAT":     &c.Format,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "TEST_MODE"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%sTEST_MODE must be a boolean", EnvPrefix)
		}
		c.TestMode = b
	}
	if v, ok := lookup(EnvPrefix + "MAX_DEPTH"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%sMAX_DEPTH must be an integer", EnvPrefix)
		}
		c.MaxDepth = n
	}
	return nil
}

// Validate checks the settings in the order a user would fix them:
// package, version, max depth, repository, then output format.
func (c Config) Validate() error {
	if err := errors.ValidatePackage(c.Package); err != nil {
		return err
	}
	if err := errors.ValidateVersion(c.Version); err != nil {
		return err
	}
	if err := errors.ValidateMaxDepth(c.MaxDepth); err != nil {
		return err
	}
	if err := errors.ValidateRepository(c.Repository); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (use %s or %s)", c.Format, FormatText, FormatJSON)
	}
}

// Field is one displayable setting.
type Field struct {
	Key   string
	Value string
}

// Fields returns the settings as ordered key/value pairs.
func (c Config) Fields() []Field {
	output := c.Output
	if output == "" {
		output = "stdout"
	}
	return []Field{
		{"package", c.Package},
		{"repository", c.Repository},
		{"version", c.Version},
		{"test_mode", strconv.FormatBool(c.TestMode)},
		{"max_depth", strconv.Itoa(c.MaxDepth)},
		{"filter", c.Filter},
		{"output", output},
		{"format", c.Format},
	}
}
