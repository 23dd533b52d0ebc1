package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitcontrib/go-gitcontrib/internal/gitrepo"
)

var errNoConfigFile = errors.New("no configuration file found")

// configFileNames lists the files probed during discovery, most specific
// first.
func configFileNames(env string) []string {
	return []string{
		fmt.Sprintf("config_%s.yaml", env),
		fmt.Sprintf("config_%s.yml", env),
		"config.yaml",
		"config.yml",
		"gitcontrib.yaml",
		".gitcontrib.yaml",
	}
}

// Discover locates the configuration file for a working directory and
// environment name. Search order: the GITCONTRIB_CONFIG environment
// variable, the well-known names in dir, then the same names at the root
// of the enclosing git repository. Returns a NotFoundError when nothing
// matches.
func Discover(dir, env string) (string, error) {
	if path, ok := os.LookupEnv(EnvConfigPath); ok && path != "" {
		return path, nil
	}

	if dir == "" {
		dir = "."
	}
	if env == "" {
		env = DefaultEnvironment
	}

	names := configFileNames(env)
	if path := findConfigFile(dir, names); path != "" {
		return path, nil
	}

	// The working directory may sit below the repository root where the
	// configuration file lives.
	if abs, err := filepath.Abs(dir); err == nil {
		if root, err := gitrepo.FindRoot(abs); err == nil && root != abs {
			if path := findConfigFile(root, names); path != "" {
				return path, nil
			}
		}
	}

	return "", &NotFoundError{Path: dir, Err: errNoConfigFile}
}

// findConfigFile probes dir for the first existing candidate name.
func findConfigFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
