package cmd

import (
	"fmt"

	"github.com/gitcontrib/go-gitcontrib/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration against the schema",
	Long: "validate locates the configuration file, applies environment overrides,\n" +
		"and reports the first schema violation. Exits non-zero when the file is\n" +
		"missing, malformed, or invalid.",
	Args: cobra.NoArgs,
	RunE: validateRunE,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "configuration valid (version %s)\n", cfg.Version)
	return nil
}

// loadConfiguration runs the full pipeline: locate the file, parse it,
// layer environment overrides on top, validate, and resolve.
func loadConfiguration() (config.Config, error) {
	path := flagConfig
	if path == "" {
		found, err := config.Discover(flagPath, environment())
		if err != nil {
			return config.Config{}, err
		}
		path = found
	}
	logger.Debug("loading configuration", zap.String("path", path))

	doc, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, err
	}

	builder := config.NewBuilder().Add(doc)
	if !flagNoEnv {
		builder.Add(config.FromEnviron())
	}

	cfg, err := builder.Build()
	if err != nil {
		return config.Config{}, err
	}
	cfg.Debug = flagDebug || (!flagNoEnv && config.DebugEnabled())

	logger.Debug("configuration resolved",
		zap.String("version", cfg.Version),
		zap.String("environment", environment()))
	return cfg, nil
}
