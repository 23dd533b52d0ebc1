package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NotFoundError reports a configuration source that does not exist or
// cannot be read. Fatal to startup; never retried.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration source unreadable: %v", e.Err)
	}
	return fmt.Sprintf("configuration source %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError reports a configuration source that is not well-formed YAML.
// The wrapped yaml error carries the offending line when available.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing configuration: %v", e.Err)
	}
	return fmt.Sprintf("parsing configuration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a configuration field that is missing without a
// usable default, has the wrong type, or violates its documented
// constraint. Field is the dotted path ("git.default_branch"); Value is
// the offending value, nil when the field is absent.
type ValidationError struct {
	Field      string
	Value      any
	Constraint string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("invalid configuration: %s", e.Constraint)
	case e.Value == nil:
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Constraint)
	default:
		return fmt.Sprintf("invalid configuration: %s = %v: %s", e.Field, e.Value, e.Constraint)
	}
}

// newTypeError converts a yaml type mismatch into a ValidationError. The
// yaml errors embed line numbers but not dotted field paths, so the field
// stays empty and the messages are carried in the constraint.
func newTypeError(terr *yaml.TypeError) *ValidationError {
	return &ValidationError{
		Constraint: "wrong type: " + strings.Join(terr.Errors, "; "),
	}
}
