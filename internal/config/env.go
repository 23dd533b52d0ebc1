package config

import (
	"os"
	"strings"
)

// Environment variables honored as configuration overrides. Values from
// the environment take precedence over file values and defaults; callers
// opt in by adding FromEnviron's document to a Builder.
const (
	EnvGitAuthor   = "GIT_AUTHOR"
	EnvGitEmail    = "GIT_EMAIL"
	EnvDatabaseURL = "DATABASE_URL"

	// EnvAppEnv selects the config_<env>.yaml file during discovery.
	EnvAppEnv = "APP_ENV"
	// EnvDebug toggles debug diagnostics in the consuming application.
	EnvDebug = "DEBUG"
	// EnvConfigPath points discovery at an explicit configuration file.
	EnvConfigPath = "GITCONTRIB_CONFIG"
)

// DefaultEnvironment is the environment name assumed when APP_ENV is
// unset.
const DefaultEnvironment = "development"

// FromEnviron snapshots the override variables from the process
// environment into a document layer. Variables that are set but empty
// still override, matching ordinary environment semantics.
func FromEnviron() *Document {
	doc := &Document{}
	if v, ok := os.LookupEnv(EnvGitAuthor); ok {
		doc.Git.DefaultAuthor = &v
	}
	if v, ok := os.LookupEnv(EnvGitEmail); ok {
		doc.Git.DefaultEmail = &v
	}
	if v, ok := os.LookupEnv(EnvDatabaseURL); ok {
		doc.Database.URL = &v
	}
	return doc
}

// AppEnv returns the active environment name, DefaultEnvironment when
// APP_ENV is unset or empty.
func AppEnv() string {
	if v := os.Getenv(EnvAppEnv); v != "" {
		return v
	}
	return DefaultEnvironment
}

// DebugEnabled reports whether the DEBUG variable is set to a true value.
func DebugEnabled() bool {
	return strings.ToLower(os.Getenv(EnvDebug)) == "true"
}
