package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gitcontrib/go-gitcontrib/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestDiscover_EnvVarWins(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/gitcontrib/config.yaml")

	path, err := Discover(t.TempDir(), "development")
	require.NoError(t, err)
	require.Equal(t, "/etc/gitcontrib/config.yaml", path)
}

func TestDiscover_EnvSpecificName(t *testing.T) {
	unsetenv(t, EnvConfigPath)
	dir := t.TempDir()
	want := filepath.Join(dir, "config_production.yaml")
	writeTestFile(t, want)

	path, err := Discover(dir, "production")
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDiscover_EnvSpecificPreferredOverGeneric(t *testing.T) {
	unsetenv(t, EnvConfigPath)
	dir := t.TempDir()
	want := filepath.Join(dir, "config_development.yaml")
	writeTestFile(t, want)
	writeTestFile(t, filepath.Join(dir, "config.yaml"))

	path, err := Discover(dir, "development")
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDiscover_GenericFallback(t *testing.T) {
	unsetenv(t, EnvConfigPath)
	dir := t.TempDir()
	want := filepath.Join(dir, "config.yaml")
	writeTestFile(t, want)

	path, err := Discover(dir, "development")
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDiscover_DottedName(t *testing.T) {
	unsetenv(t, EnvConfigPath)
	dir := t.TempDir()
	want := filepath.Join(dir, ".gitcontrib.yaml")
	writeTestFile(t, want)

	path, err := Discover(dir, "development")
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDiscover_RepositoryRootFallback(t *testing.T) {
	unsetenv(t, EnvConfigPath)
	repo := testutil.NewTestRepo(t)
	want := repo.WriteFile("config.yaml", fullDocument)
	nested := repo.Mkdir("cmd/tool")

	path, err := Discover(nested, "development")
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDiscover_EmptyArgsUseDefaults(t *testing.T) {
	unsetenv(t, EnvConfigPath)
	repo := testutil.NewTestRepo(t)
	want := repo.WriteFile("config_development.yaml", fullDocument)

	path, err := Discover(repo.Path(), "")
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDiscover_NothingFound(t *testing.T) {
	unsetenv(t, EnvConfigPath)

	_, err := Discover(t.TempDir(), "development")
	require.Error(t, err)

	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	require.Contains(t, err.Error(), "no configuration file found")
}

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(fullDocument), 0o644))
}
