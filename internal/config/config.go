package config

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gitcontrib/go-gitcontrib/internal/dateformat"
	"github.com/gitcontrib/go-gitcontrib/internal/version"
)

// Config is the immutable, validated configuration. It is a plain value
// holding only scalars; copies are deep by construction. Constructed once
// via Builder.Build and treated as read-only thereafter.
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Git      GitConfig      `yaml:"git" json:"git"`
	Scraper  ScraperConfig  `yaml:"scraper" json:"scraper"`
	Date     DateConfig     `yaml:"date" json:"date"`
	Database DatabaseConfig `yaml:"database" json:"database"`

	// Debug mirrors the DEBUG environment toggle. Not part of the file
	// schema.
	Debug bool `yaml:"-" json:"-"`
}

// GitConfig holds the resolved git settings.
type GitConfig struct {
	DefaultBranch         string `yaml:"default_branch" json:"default_branch"`
	CommitMessageTemplate string `yaml:"commit_message_template" json:"commit_message_template"`
	MaxCommitsPerDay      int    `yaml:"max_commits_per_day" json:"max_commits_per_day"`
	MinCommitsPerDay      int    `yaml:"min_commits_per_day" json:"min_commits_per_day"`
	DefaultAuthor         string `yaml:"default_author" json:"default_author"`
	DefaultEmail          string `yaml:"default_email" json:"default_email"`
}

// ScraperConfig holds the resolved scraper settings.
type ScraperConfig struct {
	RequestTimeout        int    `yaml:"request_timeout" json:"request_timeout"`
	MaxRetries            int    `yaml:"max_retries" json:"max_retries"`
	RetryDelay            int    `yaml:"retry_delay" json:"retry_delay"`
	UserAgent             string `yaml:"user_agent" json:"user_agent"`
	MaxConcurrentRequests int    `yaml:"max_concurrent_requests" json:"max_concurrent_requests"`
}

// DateConfig holds the resolved date handling settings.
type DateConfig struct {
	DateFormat      string        `yaml:"date_format" json:"date_format"`
	Timezone        string        `yaml:"timezone" json:"timezone"`
	WeekendPolicy   WeekendPolicy `yaml:"weekend_policy" json:"weekend_policy"`
	MaxDaysLookback int           `yaml:"max_days_lookback" json:"max_days_lookback"`
	MaxDaysAhead    int           `yaml:"max_days_ahead" json:"max_days_ahead"`
}

// DatabaseConfig holds the resolved database settings. The URL names a
// connection target for an external persistence layer; no connection is
// ever opened here.
type DatabaseConfig struct {
	URL string `yaml:"url" json:"url"`
}

// SemVer parses the version field into its semantic version components.
func (c Config) SemVer() (version.SemanticVersion, error) {
	return version.Parse(c.Version)
}

// Flatten returns the configuration as dotted-path keys mapped to string
// values, for single-value lookups and flat output.
func (c Config) Flatten() map[string]string {
	return map[string]string{
		"version":                         c.Version,
		"git.default_branch":              c.Git.DefaultBranch,
		"git.commit_message_template":     c.Git.CommitMessageTemplate,
		"git.max_commits_per_day":         strconv.Itoa(c.Git.MaxCommitsPerDay),
		"git.min_commits_per_day":         strconv.Itoa(c.Git.MinCommitsPerDay),
		"git.default_author":              c.Git.DefaultAuthor,
		"git.default_email":               c.Git.DefaultEmail,
		"scraper.request_timeout":         strconv.Itoa(c.Scraper.RequestTimeout),
		"scraper.max_retries":             strconv.Itoa(c.Scraper.MaxRetries),
		"scraper.retry_delay":             strconv.Itoa(c.Scraper.RetryDelay),
		"scraper.user_agent":              c.Scraper.UserAgent,
		"scraper.max_concurrent_requests": strconv.Itoa(c.Scraper.MaxConcurrentRequests),
		"date.date_format":                c.Date.DateFormat,
		"date.timezone":                   c.Date.Timezone,
		"date.weekend_policy":             c.Date.WeekendPolicy.String(),
		"date.max_days_lookback":          strconv.Itoa(c.Date.MaxDaysLookback),
		"date.max_days_ahead":             strconv.Itoa(c.Date.MaxDaysAhead),
		"database.url":                    c.Database.URL,
	}
}

// Timeout returns request_timeout as a duration.
func (c ScraperConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// RetryBackoff returns retry_delay as a duration.
func (c ScraperConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryDelay) * time.Second
}

// Location resolves the configured timezone.
func (c DateConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// FormatDate renders t in the configured timezone using the configured
// strftime pattern.
func (c DateConfig) FormatDate(t time.Time) (string, error) {
	loc, err := c.Location()
	if err != nil {
		return "", err
	}
	return dateformat.Format(c.DateFormat, t.In(loc))
}

// ParseURL parses the connection URI.
func (c DatabaseConfig) ParseURL() (*url.URL, error) {
	return url.Parse(c.URL)
}

// Driver returns the connection URI scheme, such as "sqlite" or
// "postgres".
func (c DatabaseConfig) Driver() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return u.Scheme
}
