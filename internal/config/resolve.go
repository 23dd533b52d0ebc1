package config

// resolve dereferences a merged, validated document into the immutable
// Config. Every optional field is non-nil after the default merge and the
// required fields were checked by validate, so resolution cannot fail.
func resolve(doc *Document) Config {
	policy, _ := ParseWeekendPolicy(derefString(doc.Date.WeekendPolicy, ""))

	return Config{
		Version: derefString(doc.Version, ""),
		Git: GitConfig{
			DefaultBranch:         derefString(doc.Git.DefaultBranch, ""),
			CommitMessageTemplate: derefString(doc.Git.CommitMessageTemplate, ""),
			MaxCommitsPerDay:      derefInt(doc.Git.MaxCommitsPerDay, 0),
			MinCommitsPerDay:      derefInt(doc.Git.MinCommitsPerDay, 0),
			DefaultAuthor:         derefString(doc.Git.DefaultAuthor, ""),
			DefaultEmail:          derefString(doc.Git.DefaultEmail, ""),
		},
		Scraper: ScraperConfig{
			RequestTimeout:        derefInt(doc.Scraper.RequestTimeout, 0),
			MaxRetries:            derefInt(doc.Scraper.MaxRetries, 0),
			RetryDelay:            derefInt(doc.Scraper.RetryDelay, 0),
			UserAgent:             derefString(doc.Scraper.UserAgent, ""),
			MaxConcurrentRequests: derefInt(doc.Scraper.MaxConcurrentRequests, 0),
		},
		Date: DateConfig{
			DateFormat:      derefString(doc.Date.DateFormat, ""),
			Timezone:        derefString(doc.Date.Timezone, ""),
			WeekendPolicy:   policy,
			MaxDaysLookback: derefInt(doc.Date.MaxDaysLookback, 0),
			MaxDaysAhead:    derefInt(doc.Date.MaxDaysAhead, 0),
		},
		Database: DatabaseConfig{
			URL: derefString(doc.Database.URL, ""),
		},
	}
}
