// Package dateformat validates and applies strftime-style date format
// patterns, the pattern language used by the configuration file's
// date.date_format field (e.g. "%Y-%m-%d").
package dateformat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Validate reports whether pattern is a usable strftime pattern: every
// directive must be recognized and at least one directive must be present
// (a directive-free pattern would format every date identically).
func Validate(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return errors.New("pattern is empty")
	}
	if strings.HasSuffix(pattern, "%") && !strings.HasSuffix(pattern, "%%") {
		return errors.New("pattern ends with a bare %")
	}
	if _, err := strftime.New(pattern); err != nil {
		return fmt.Errorf("invalid strftime pattern: %w", err)
	}
	if !hasDirective(pattern) {
		return errors.New("pattern contains no time directives")
	}
	return nil
}

// Format renders t according to a strftime pattern. Patterns rejected by
// Validate are rejected here as well.
func Format(pattern string, t time.Time) (string, error) {
	if err := Validate(pattern); err != nil {
		return "", err
	}
	f, err := strftime.New(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid strftime pattern: %w", err)
	}
	return f.FormatString(t), nil
}

// hasDirective reports whether the pattern contains at least one
// non-literal directive. "%%" is a literal percent sign, not a directive.
func hasDirective(pattern string) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '%' {
			continue
		}
		if pattern[i+1] == '%' {
			i++ // skip the escaped percent
			continue
		}
		return true
	}
	return false
}
