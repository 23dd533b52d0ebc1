package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func builtConfig(t *testing.T) Config {
	t.Helper()
	doc, err := LoadBytes([]byte(fullDocument))
	require.NoError(t, err)
	cfg, err := NewBuilder().Add(doc).Build()
	require.NoError(t, err)
	return cfg
}

func TestConfig_SemVer(t *testing.T) {
	cfg := builtConfig(t)
	v, err := cfg.SemVer()
	require.NoError(t, err)
	require.Equal(t, int64(0), v.Major)
	require.Equal(t, int64(1), v.Minor)
	require.Equal(t, int64(0), v.Patch)
}

func TestScraperConfig_Durations(t *testing.T) {
	cfg := builtConfig(t)
	require.Equal(t, 30*time.Second, cfg.Scraper.Timeout())
	require.Equal(t, 5*time.Second, cfg.Scraper.RetryBackoff())
}

func TestDateConfig_Location(t *testing.T) {
	cfg := builtConfig(t)
	loc, err := cfg.Date.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())
}

func TestDateConfig_FormatDate(t *testing.T) {
	cfg := builtConfig(t)
	got, err := cfg.Date.FormatDate(time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "2024-03-09", got)
}

func TestDateConfig_FormatDate_ConvertsTimezone(t *testing.T) {
	doc, err := LoadBytes([]byte(fullDocument))
	require.NoError(t, err)
	doc.Date.Timezone = stringPtr("America/New_York")

	cfg, err := NewBuilder().Add(doc).Build()
	require.NoError(t, err)

	// 01:30 UTC on March 10 is still March 9 in New York.
	got, err := cfg.Date.FormatDate(time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "2024-03-09", got)
}

func TestDatabaseConfig_ParseURL(t *testing.T) {
	cfg := builtConfig(t)
	u, err := cfg.Database.ParseURL()
	require.NoError(t, err)
	require.Equal(t, "sqlite", u.Scheme)
}

func TestDatabaseConfig_Driver(t *testing.T) {
	require.Equal(t, "sqlite", DatabaseConfig{URL: "sqlite:///./git_analyzer.db"}.Driver())
	require.Equal(t, "postgres", DatabaseConfig{URL: "postgres://u:p@localhost/db"}.Driver())
}

func TestConfig_Flatten(t *testing.T) {
	cfg := builtConfig(t)
	flat := cfg.Flatten()

	require.Len(t, flat, 18)
	require.Equal(t, "0.1.0", flat["version"])
	require.Equal(t, "develop", flat["git.default_branch"])
	require.Equal(t, "10", flat["git.max_commits_per_day"])
	require.Equal(t, "skip", flat["date.weekend_policy"])
	require.Equal(t, "sqlite:///./git_analyzer.db", flat["database.url"])
	require.NotContains(t, flat, "debug")
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := builtConfig(t)

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NotContains(t, string(data), "debug")

	doc, err := LoadBytes(data)
	require.NoError(t, err)
	again, err := NewBuilder().Add(doc).Build()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestConfig_JSONSerialization(t *testing.T) {
	cfg := builtConfig(t)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, "0.1.0", parsed["version"])

	date, ok := parsed["date"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "skip", date["weekend_policy"])
	require.NotContains(t, parsed, "debug")
}
