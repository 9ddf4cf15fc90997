package cscst

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrOptionsNotFound is returned by FindOptionsFile when no options file is
// found walking up from the starting directory.
var ErrOptionsNotFound = errors.New("cscst: no options file found")

// ParserOptions represents the .cscst.yaml configuration file controlling
// lexing and parsing behavior.
type ParserOptions struct {
	// TabWidth is the column width a tab character advances a position by,
	// used for diagnostic line/column reporting.
	TabWidth int `yaml:"tabWidth,omitempty"`

	// TreatWarningsAsErrors promotes every reported warning to an error.
	TreatWarningsAsErrors bool `yaml:"treatWarningsAsErrors,omitempty"`

	// UnsafeContextDefault seeds the parser's notion of whether it starts
	// already inside an unsafe context (e.g. when parsing a fragment
	// extracted from an enclosing unsafe block).
	UnsafeContextDefault bool `yaml:"unsafeContextDefault,omitempty"`
}

// DefaultOptionNames are the filenames searched for by LoadOptions.
var DefaultOptionNames = []string{".cscst.yaml", ".cscst.yml", "cscst.yaml", "cscst.yml"}

// DefaultParserOptions returns the options a bare Parse call uses when no
// options file is found or provided.
func DefaultParserOptions() *ParserOptions {
	return &ParserOptions{TabWidth: 4}
}

// LoadOptions finds and loads the nearest options file walking up from dir.
func LoadOptions(dir string) (*ParserOptions, error) {
	path, err := FindOptionsFile(dir)
	if err != nil {
		return nil, err
	}

	return LoadOptionsFile(path)
}

// FindOptionsFile searches for an options file starting from dir and
// walking up through its parents.
func FindOptionsFile(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultOptionNames {
			path := filepath.Join(dir, name)

			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrOptionsNotFound
		}

		dir = parent
	}
}

// LoadOptionsFile loads options from a specific path, defaulting TabWidth
// to 4 when the file does not set it.
func LoadOptionsFile(path string) (*ParserOptions, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	opts := DefaultParserOptions()

	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}

	return opts, nil
}
