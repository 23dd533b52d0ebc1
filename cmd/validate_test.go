package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gitcontrib/go-gitcontrib/internal/config"

	"github.com/stretchr/testify/require"
)

const minimalConfigYAML = `version: "0.1.0"
git:
  default_branch: main
  default_author: File Author
database:
  url: sqlite:///./git_analyzer.db
`

// clearEnvOverrides unsets every environment variable the loader reads,
// so tests see only what they set themselves. t.Setenv registers the
// restore.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvGitAuthor,
		config.EnvGitEmail,
		config.EnvDatabaseURL,
		config.EnvAppEnv,
		config.EnvDebug,
		config.EnvConfigPath,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfiguration_ExplicitPath(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "custom.yaml", minimalConfigYAML)
	defer func() { flagConfig = "" }()

	cfg, err := loadConfiguration()
	require.NoError(t, err)
	require.Equal(t, "0.1.0", cfg.Version)
	require.Equal(t, "main", cfg.Git.DefaultBranch)
	require.Equal(t, 10, cfg.Git.MaxCommitsPerDay)
}

func TestLoadConfiguration_Discovery(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", minimalConfigYAML)

	flagConfig = ""
	flagPath = dir
	defer func() { flagPath = "." }()

	cfg, err := loadConfiguration()
	require.NoError(t, err)
	require.Equal(t, "0.1.0", cfg.Version)
}

func TestLoadConfiguration_EnvSpecificFileWins(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	writeConfigFile(t, dir, "config.yaml", minimalConfigYAML)
	writeConfigFile(t, dir, "config_production.yaml", `version: "2.0.0"
git:
  default_branch: main
database:
  url: postgres://db/prod
`)

	flagConfig = ""
	flagPath = dir
	flagEnv = "production"
	defer func() {
		flagPath = "."
		flagEnv = ""
	}()

	cfg, err := loadConfiguration()
	require.NoError(t, err)
	require.Equal(t, "2.0.0", cfg.Version)
	require.Equal(t, "postgres", cfg.Database.Driver())
}

func TestLoadConfiguration_NotFound(t *testing.T) {
	clearEnvOverrides(t)

	flagConfig = ""
	flagPath = t.TempDir()
	defer func() { flagPath = "." }()

	_, err := loadConfiguration()
	require.Error(t, err)

	var nfe *config.NotFoundError
	require.True(t, errors.As(err, &nfe))
}

func TestLoadConfiguration_MalformedFile(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "config.yaml", "git: [unclosed\n")
	defer func() { flagConfig = "" }()

	_, err := loadConfiguration()
	require.Error(t, err)

	var perr *config.ParseError
	require.True(t, errors.As(err, &perr))
}

func TestLoadConfiguration_InvalidValues(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "config.yaml", minimalConfigYAML+`scraper:
  request_timeout: 0
`)
	defer func() { flagConfig = "" }()

	_, err := loadConfiguration()
	require.Error(t, err)

	var verr *config.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "scraper.request_timeout", verr.Field)
}

func TestLoadConfiguration_EnvOverridesFile(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "config.yaml", minimalConfigYAML)
	defer func() { flagConfig = "" }()

	t.Setenv(config.EnvGitAuthor, "Env Author")

	cfg, err := loadConfiguration()
	require.NoError(t, err)
	require.Equal(t, "Env Author", cfg.Git.DefaultAuthor)
}

func TestLoadConfiguration_NoEnvFlagIgnoresOverrides(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "config.yaml", minimalConfigYAML)
	defer func() { flagConfig = "" }()

	t.Setenv(config.EnvGitAuthor, "Env Author")

	flagNoEnv = true
	defer func() { flagNoEnv = false }()

	cfg, err := loadConfiguration()
	require.NoError(t, err)
	require.Equal(t, "File Author", cfg.Git.DefaultAuthor)
}

func TestValidateRunE_Valid(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "config.yaml", minimalConfigYAML)
	defer func() { flagConfig = "" }()

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)

	err := validateRunE(validateCmd, nil)
	require.NoError(t, err)
	require.Equal(t, "configuration valid (version 0.1.0)\n", buf.String())
}

func TestValidateRunE_InvalidReportsField(t *testing.T) {
	clearEnvOverrides(t)
	dir := t.TempDir()
	flagConfig = writeConfigFile(t, dir, "config.yaml", `version: "0.1.0"
git:
  default_branch: main
  max_commits_per_day: 1
  min_commits_per_day: 5
database:
  url: sqlite:///./git_analyzer.db
`)
	defer func() { flagConfig = "" }()

	err := validateRunE(validateCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "git.max_commits_per_day")
}
