// Package config provides YAML configuration loading, default substitution,
// environment overrides, and validated resolution into the immutable
// configuration consumed by the rest of the application.
package config

// Document is a raw configuration document. All fields are pointers to
// support merge semantics during configuration building: nil means
// "not set, inherit from the layer below".
type Document struct {
	Version  *string         `yaml:"version"`
	Git      GitSection      `yaml:"git"`
	Scraper  ScraperSection  `yaml:"scraper"`
	Date     DateSection     `yaml:"date"`
	Database DatabaseSection `yaml:"database"`
}

// GitSection holds the raw git settings.
type GitSection struct {
	DefaultBranch         *string `yaml:"default_branch"`
	CommitMessageTemplate *string `yaml:"commit_message_template"`
	MaxCommitsPerDay      *int    `yaml:"max_commits_per_day"`
	MinCommitsPerDay      *int    `yaml:"min_commits_per_day"`
	DefaultAuthor         *string `yaml:"default_author"`
	DefaultEmail          *string `yaml:"default_email"`
}

// ScraperSection holds the raw scraper settings. These are configuration
// data for an external component; the loader only validates them.
type ScraperSection struct {
	RequestTimeout        *int    `yaml:"request_timeout"`
	MaxRetries            *int    `yaml:"max_retries"`
	RetryDelay            *int    `yaml:"retry_delay"`
	UserAgent             *string `yaml:"user_agent"`
	MaxConcurrentRequests *int    `yaml:"max_concurrent_requests"`
}

// DateSection holds the raw date handling settings. WeekendPolicy stays a
// plain string here so that an unknown value surfaces as a validation
// failure with its field path rather than a decode error.
type DateSection struct {
	DateFormat      *string `yaml:"date_format"`
	Timezone        *string `yaml:"timezone"`
	WeekendPolicy   *string `yaml:"weekend_policy"`
	MaxDaysLookback *int    `yaml:"max_days_lookback"`
	MaxDaysAhead    *int    `yaml:"max_days_ahead"`
}

// DatabaseSection holds the raw database settings.
type DatabaseSection struct {
	URL *string `yaml:"url"`
}
