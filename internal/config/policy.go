package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// WeekendPolicy controls whether weekend days count in downstream
// scheduling. The semantics are owned by the consuming application; the
// configuration only constrains the value.
type WeekendPolicy int

const (
	WeekendSkip WeekendPolicy = iota
	WeekendInclude
)

func (p WeekendPolicy) String() string {
	switch p {
	case WeekendSkip:
		return "skip"
	case WeekendInclude:
		return "include"
	default:
		return "unknown"
	}
}

// ParseWeekendPolicy parses a weekend policy name, case-insensitively.
func ParseWeekendPolicy(s string) (WeekendPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return WeekendSkip, nil
	case "include":
		return WeekendInclude, nil
	default:
		return WeekendSkip, fmt.Errorf("unknown weekend policy %q", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler for WeekendPolicy.
func (p *WeekendPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseWeekendPolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for WeekendPolicy.
func (p WeekendPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// MarshalJSON implements json.Marshaler for WeekendPolicy.
func (p WeekendPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler for WeekendPolicy.
func (p *WeekendPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWeekendPolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
