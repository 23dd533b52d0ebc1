// Package gitcontrib provides the public Go API for loading the git
// contribution analyzer configuration. Values are resolved from three
// layers: built-in defaults, a YAML configuration file, and process
// environment overrides.
//
// Basic usage:
//
//	cfg, err := gitcontrib.Load(gitcontrib.Options{
//	    Path: "/path/to/project",
//	})
//	fmt.Println(cfg.Git.DefaultBranch) // "main"
//	fmt.Println(cfg.Scraper.Timeout()) // "30s"
package gitcontrib

import (
	"github.com/gitcontrib/go-gitcontrib/internal/config"
)

// Options configures Load.
type Options struct {
	// Path is the directory where configuration discovery starts.
	// Defaults to "." if empty.
	Path string

	// ConfigPath names an explicit configuration file, skipping
	// discovery entirely.
	ConfigPath string

	// Env selects the config_<env>.yaml discovery candidate. Empty
	// means the APP_ENV variable, or "development" when that is unset
	// too.
	Env string

	// DisableEnv turns off process environment input: the GIT_AUTHOR,
	// GIT_EMAIL, and DATABASE_URL value overrides and the DEBUG toggle.
	DisableEnv bool

	// Overrides is an optional programmatic layer merged on top of the
	// file and environment values.
	Overrides *Document
}

// Re-exported configuration types, so consumers never import internal
// packages.
type (
	Config         = config.Config
	GitConfig      = config.GitConfig
	ScraperConfig  = config.ScraperConfig
	DateConfig     = config.DateConfig
	DatabaseConfig = config.DatabaseConfig

	Document        = config.Document
	GitSection      = config.GitSection
	ScraperSection  = config.ScraperSection
	DateSection     = config.DateSection
	DatabaseSection = config.DatabaseSection

	WeekendPolicy = config.WeekendPolicy

	NotFoundError   = config.NotFoundError
	ParseError      = config.ParseError
	ValidationError = config.ValidationError
)

// Weekend policy values.
const (
	WeekendSkip    = config.WeekendSkip
	WeekendInclude = config.WeekendInclude
)

// Load locates the configuration file, parses it, layers environment
// and programmatic overrides on top of the defaults, validates the
// result, and resolves it into an immutable Config.
func Load(opts Options) (Config, error) {
	path := opts.ConfigPath
	if path == "" {
		env := opts.Env
		if env == "" {
			env = config.AppEnv()
		}
		found, err := config.Discover(opts.Path, env)
		if err != nil {
			return Config{}, err
		}
		path = found
	}

	doc, err := config.LoadFile(path)
	if err != nil {
		return Config{}, err
	}

	builder := config.NewBuilder().Add(doc)
	if !opts.DisableEnv {
		builder.Add(config.FromEnviron())
	}
	builder.Add(opts.Overrides)

	cfg, err := builder.Build()
	if err != nil {
		return Config{}, err
	}
	if !opts.DisableEnv {
		cfg.Debug = config.DebugEnabled()
	}
	return cfg, nil
}
