package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads, overrides from the process environment and validates the
// document at path.
func Load(path string) (*Document, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookup LookupFunc) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	doc.Path = path
	doc.resolvePaths(filepath.Dir(path))

	if err := ApplyEnv(doc, lookup); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Parse decodes data over the defaults. It does not validate.
func Parse(data []byte, format Format) (*Document, error) {
	doc := Default()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(doc); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Path: "<input>", Err: err}
	}
	return doc, nil
}

func (d *Document) resolvePaths(dir string) {
	for _, p := range []*string{&d.Source.Path, &d.Script.Path, &d.Snapshot.Path} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
