package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gitcontrib/go-gitcontrib/internal/dateformat"
	"github.com/gitcontrib/go-gitcontrib/internal/gitrepo"
	"github.com/gitcontrib/go-gitcontrib/internal/version"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// validate checks a merged document against the schema constraints, in
// schema order. The first violation is returned; validation is
// deterministic for a given document.
func validate(doc *Document) error {
	if doc.Version == nil {
		return &ValidationError{Field: "version", Constraint: "required field is missing"}
	}
	if _, err := version.Parse(*doc.Version); err != nil {
		return &ValidationError{Field: "version", Value: *doc.Version, Constraint: "must be a semantic version string"}
	}

	if err := validateGit(&doc.Git); err != nil {
		return err
	}
	if err := validateScraper(&doc.Scraper); err != nil {
		return err
	}
	if err := validateDate(&doc.Date); err != nil {
		return err
	}
	return validateDatabase(&doc.Database)
}

func validateGit(git *GitSection) error {
	if git.DefaultBranch == nil {
		return &ValidationError{Field: "git.default_branch", Constraint: "required field is missing"}
	}
	branch := *git.DefaultBranch
	if branch == "" {
		return &ValidationError{Field: "git.default_branch", Value: branch, Constraint: "must be non-empty"}
	}
	if err := gitrepo.ValidBranchName(branch); err != nil {
		return &ValidationError{Field: "git.default_branch", Value: branch, Constraint: "must be a syntactically valid git branch name"}
	}

	if tmpl := derefString(git.CommitMessageTemplate, ""); !strings.Contains(tmpl, "{message}") {
		return &ValidationError{Field: "git.commit_message_template", Value: tmpl, Constraint: "must contain the {message} placeholder"}
	}

	maxCommits := derefInt(git.MaxCommitsPerDay, 0)
	minCommits := derefInt(git.MinCommitsPerDay, 0)
	if maxCommits < minCommits {
		return &ValidationError{
			Field:      "git.max_commits_per_day",
			Value:      maxCommits,
			Constraint: fmt.Sprintf("must be >= git.min_commits_per_day (%d)", minCommits),
		}
	}
	if minCommits < 0 {
		return &ValidationError{Field: "git.min_commits_per_day", Value: minCommits, Constraint: "must be >= 0"}
	}

	if author := derefString(git.DefaultAuthor, ""); author == "" {
		return &ValidationError{Field: "git.default_author", Value: author, Constraint: "must be non-empty"}
	}
	if email := derefString(git.DefaultEmail, ""); !emailPattern.MatchString(email) {
		return &ValidationError{Field: "git.default_email", Value: email, Constraint: "must be a valid email address"}
	}
	return nil
}

func validateScraper(scraper *ScraperSection) error {
	if timeout := derefInt(scraper.RequestTimeout, 0); timeout <= 0 {
		return &ValidationError{Field: "scraper.request_timeout", Value: timeout, Constraint: "must be > 0"}
	}
	if retries := derefInt(scraper.MaxRetries, 0); retries < 0 {
		return &ValidationError{Field: "scraper.max_retries", Value: retries, Constraint: "must be >= 0"}
	}
	if delay := derefInt(scraper.RetryDelay, 0); delay < 0 {
		return &ValidationError{Field: "scraper.retry_delay", Value: delay, Constraint: "must be >= 0"}
	}
	if agent := derefString(scraper.UserAgent, ""); agent == "" {
		return &ValidationError{Field: "scraper.user_agent", Value: agent, Constraint: "must be non-empty"}
	}
	if concurrent := derefInt(scraper.MaxConcurrentRequests, 0); concurrent < 1 {
		return &ValidationError{Field: "scraper.max_concurrent_requests", Value: concurrent, Constraint: "must be >= 1"}
	}
	return nil
}

func validateDate(date *DateSection) error {
	format := derefString(date.DateFormat, "")
	if err := dateformat.Validate(format); err != nil {
		return &ValidationError{
			Field:      "date.date_format",
			Value:      format,
			Constraint: fmt.Sprintf("must be a valid strftime pattern: %v", err),
		}
	}

	tz := derefString(date.Timezone, "")
	if tz == "" {
		return &ValidationError{Field: "date.timezone", Value: tz, Constraint: "must be a valid IANA timezone identifier"}
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return &ValidationError{Field: "date.timezone", Value: tz, Constraint: "must be a valid IANA timezone identifier"}
	}

	policy := derefString(date.WeekendPolicy, "")
	if _, err := ParseWeekendPolicy(policy); err != nil {
		return &ValidationError{Field: "date.weekend_policy", Value: policy, Constraint: `must be one of "skip" or "include"`}
	}

	if lookback := derefInt(date.MaxDaysLookback, 0); lookback < 0 {
		return &ValidationError{Field: "date.max_days_lookback", Value: lookback, Constraint: "must be >= 0"}
	}
	if ahead := derefInt(date.MaxDaysAhead, 0); ahead < 0 {
		return &ValidationError{Field: "date.max_days_ahead", Value: ahead, Constraint: "must be >= 0"}
	}
	return nil
}

func validateDatabase(db *DatabaseSection) error {
	if db.URL == nil {
		return &ValidationError{Field: "database.url", Constraint: "required field is missing"}
	}
	u, err := url.Parse(*db.URL)
	if err != nil || u.Scheme == "" {
		return &ValidationError{Field: "database.url", Value: *db.URL, Constraint: "must be a connection URI with a scheme"}
	}
	return nil
}
