package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a configuration file into a raw document.
// A missing or unreadable file yields a NotFoundError, malformed YAML a
// ParseError, and a type mismatch a ValidationError.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	doc, err := LoadBytes(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// LoadReader parses a configuration document from r.
func LoadReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &NotFoundError{Err: err}
	}
	return LoadBytes(data)
}

// LoadBytes parses a raw configuration document from YAML bytes. The
// document is not validated and carries no defaults; both happen when it
// is built into a Config.
func LoadBytes(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			return nil, newTypeError(terr)
		}
		return nil, &ParseError{Err: err}
	}
	return &doc, nil
}
