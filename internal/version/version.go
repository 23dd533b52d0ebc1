// Package version provides parsing for semantic-version-like strings.
package version

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var versionRegex = regexp.MustCompile(
	`^[vV]?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-([0-9A-Za-z.-]+))?(?:\+([0-9A-Za-z.-]+))?$`,
)

// SemanticVersion represents a semantic-version-like value, as found in the
// top-level version field of a configuration document.
// This type is immutable — all methods return new values.
type SemanticVersion struct {
	Major      int64
	Minor      int64
	Patch      int64
	PreRelease string
	Build      string
}

// TryParse attempts to parse a version string.
// Returns the parsed version and true if successful.
func TryParse(s string) (SemanticVersion, bool) {
	v, err := Parse(s)
	if err != nil {
		return SemanticVersion{}, false
	}
	return v, true
}

// Parse parses a semantic-version-like string. Minor and patch components are
// optional ("1" and "1.2" are accepted), as is a leading "v". Pre-release and
// build metadata suffixes are retained verbatim.
func Parse(s string) (SemanticVersion, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return SemanticVersion{}, errors.New("invalid version format: " + s)
	}

	var v SemanticVersion

	major, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return SemanticVersion{}, errors.New("invalid major version: " + matches[1])
	}
	v.Major = major

	if matches[2] != "" {
		minor, err := strconv.ParseInt(matches[2], 10, 64)
		if err != nil {
			return SemanticVersion{}, errors.New("invalid minor version: " + matches[2])
		}
		v.Minor = minor
	}

	if matches[3] != "" {
		patch, err := strconv.ParseInt(matches[3], 10, 64)
		if err != nil {
			return SemanticVersion{}, errors.New("invalid patch version: " + matches[3])
		}
		v.Patch = patch
	}

	v.PreRelease = matches[4]
	v.Build = matches[5]

	return v, nil
}

// Compare compares two versions, returning a negative value, zero, or a
// positive value. A release outranks any pre-release of the same triple;
// pre-release identifiers are compared lexically. Build metadata is not
// considered, per SemVer 2.0.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	if v.Major != other.Major {
		if v.Major > other.Major {
			return 1
		}
		return -1
	}

	if v.Minor != other.Minor {
		if v.Minor > other.Minor {
			return 1
		}
		return -1
	}

	if v.Patch != other.Patch {
		if v.Patch > other.Patch {
			return 1
		}
		return -1
	}

	switch {
	case v.PreRelease == other.PreRelease:
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	}
	return strings.Compare(v.PreRelease, other.PreRelease)
}

// String returns the canonical "major.minor.patch" form with pre-release and
// build metadata suffixes when present.
func (v SemanticVersion) String() string {
	s := strconv.FormatInt(v.Major, 10) + "." +
		strconv.FormatInt(v.Minor, 10) + "." +
		strconv.FormatInt(v.Patch, 10)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}
