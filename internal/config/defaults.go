package config

// DefaultDocument returns a document carrying the default value for every
// optional field. The three required fields (version, git.default_branch,
// database.url) have no sane default and stay nil; a merged document
// missing any of them fails validation.
func DefaultDocument() *Document {
	return &Document{
		Git: GitSection{
			CommitMessageTemplate: stringPtr("{message}"),
			MaxCommitsPerDay:      intPtr(10),
			MinCommitsPerDay:      intPtr(1),
			DefaultAuthor:         stringPtr("Your Name"),
			DefaultEmail:          stringPtr("your.email@example.com"),
		},
		Scraper: ScraperSection{
			RequestTimeout:        intPtr(30),
			MaxRetries:            intPtr(3),
			RetryDelay:            intPtr(5),
			UserAgent:             stringPtr("git-contribution-analyzer/0.1"),
			MaxConcurrentRequests: intPtr(5),
		},
		Date: DateSection{
			DateFormat:      stringPtr("%Y-%m-%d"),
			Timezone:        stringPtr("UTC"),
			WeekendPolicy:   stringPtr(WeekendSkip.String()),
			MaxDaysLookback: intPtr(365),
			MaxDaysAhead:    intPtr(0),
		},
	}
}
