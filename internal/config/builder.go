package config

// Builder constructs a Config by layering raw documents on top of the
// defaults. A Builder is single-use and not safe for concurrent use; the
// Config it produces is a plain immutable value.
type Builder struct {
	documents []*Document
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a document layer. Layers are applied in order: later layers
// take precedence over earlier ones, and everything takes precedence over
// the defaults.
func (b *Builder) Add(doc *Document) *Builder {
	if doc != nil {
		b.documents = append(b.documents, doc)
	}
	return b
}

// Build merges the layers over the default document, validates the result,
// and resolves it into an immutable Config. No partially resolved value is
// ever returned.
func (b *Builder) Build() (Config, error) {
	merged := DefaultDocument()

	for _, doc := range b.documents {
		mergeDocument(merged, doc)
	}

	if err := validate(merged); err != nil {
		return Config{}, err
	}

	return resolve(merged), nil
}

// mergeDocument applies non-nil fields from src to dst.
func mergeDocument(dst, src *Document) {
	if src == nil {
		return
	}
	if src.Version != nil {
		dst.Version = src.Version
	}
	mergeGit(&dst.Git, &src.Git)
	mergeScraper(&dst.Scraper, &src.Scraper)
	mergeDate(&dst.Date, &src.Date)
	mergeDatabase(&dst.Database, &src.Database)
}

func mergeGit(dst, src *GitSection) {
	if src.DefaultBranch != nil {
		dst.DefaultBranch = src.DefaultBranch
	}
	if src.CommitMessageTemplate != nil {
		dst.CommitMessageTemplate = src.CommitMessageTemplate
	}
	if src.MaxCommitsPerDay != nil {
		dst.MaxCommitsPerDay = src.MaxCommitsPerDay
	}
	if src.MinCommitsPerDay != nil {
		dst.MinCommitsPerDay = src.MinCommitsPerDay
	}
	if src.DefaultAuthor != nil {
		dst.DefaultAuthor = src.DefaultAuthor
	}
	if src.DefaultEmail != nil {
		dst.DefaultEmail = src.DefaultEmail
	}
}

func mergeScraper(dst, src *ScraperSection) {
	if src.RequestTimeout != nil {
		dst.RequestTimeout = src.RequestTimeout
	}
	if src.MaxRetries != nil {
		dst.MaxRetries = src.MaxRetries
	}
	if src.RetryDelay != nil {
		dst.RetryDelay = src.RetryDelay
	}
	if src.UserAgent != nil {
		dst.UserAgent = src.UserAgent
	}
	if src.MaxConcurrentRequests != nil {
		dst.MaxConcurrentRequests = src.MaxConcurrentRequests
	}
}

func mergeDate(dst, src *DateSection) {
	if src.DateFormat != nil {
		dst.DateFormat = src.DateFormat
	}
	if src.Timezone != nil {
		dst.Timezone = src.Timezone
	}
	if src.WeekendPolicy != nil {
		dst.WeekendPolicy = src.WeekendPolicy
	}
	if src.MaxDaysLookback != nil {
		dst.MaxDaysLookback = src.MaxDaysLookback
	}
	if src.MaxDaysAhead != nil {
		dst.MaxDaysAhead = src.MaxDaysAhead
	}
}

func mergeDatabase(dst, src *DatabaseSection) {
	if src.URL != nil {
		dst.URL = src.URL
	}
}
