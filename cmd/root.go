package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gitcontrib/go-gitcontrib/internal/config"
	"github.com/gitcontrib/go-gitcontrib/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global flags shared across commands.
var (
	flagConfig string
	flagEnv    string
	flagPath   string
	flagDebug  bool
	flagNoEnv  bool
)

// logger is a no-op until setupRunE replaces it after flag parsing.
var logger = zap.NewNop()

// rootCmd is the top-level command for gitcontrib.
var rootCmd = &cobra.Command{
	Use:   "gitcontrib",
	Short: "Configuration tooling for the git contribution analyzer",
	Long: "gitcontrib discovers, validates, and renders the layered YAML configuration\n" +
		"used by the git contribution analyzer: built-in defaults, then file values,\n" +
		"then environment overrides.",
	// Default action is validate.
	RunE:              validateRunE,
	PersistentPreRunE: setupRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagEnv, "env", "e", "", "environment name selecting config_<env>.yaml (default: APP_ENV or development)")
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "working directory for config discovery")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoEnv, "no-env", false, "ignore configuration overrides from the process environment")
}

// setupRunE loads .env into the process environment and builds the logger.
// Runs before every command.
func setupRunE(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	l, err := logging.New(flagDebug || config.DebugEnabled())
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// environment returns the active environment name. The --env flag wins
// over APP_ENV.
func environment() string {
	if flagEnv != "" {
		return flagEnv
	}
	return config.AppEnv()
}

// Execute runs the root command.
func Execute() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
