package cmd

import (
	"fmt"
	"io"

	"github.com/gitcontrib/go-gitcontrib/internal/config"
	"github.com/gitcontrib/go-gitcontrib/internal/output"

	"github.com/spf13/cobra"
)

var (
	flagOutput string
	flagKey    string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: "show prints the configuration after defaults, file values, and environment\n" +
		"overrides are merged. The YAML output loads back cleanly as a configuration\n" +
		"file.",
	Args: cobra.NoArgs,
	RunE: showRunE,
}

func init() {
	showCmd.Flags().StringVarP(&flagOutput, "output", "o", "yaml", "output format: yaml, json, or flat")
	showCmd.Flags().StringVar(&flagKey, "key", "", "print a single value by dotted key (e.g. git.default_branch)")
	rootCmd.AddCommand(showCmd)
}

func showRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg)
}

// writeConfig renders the resolved configuration in the requested format.
func writeConfig(w io.Writer, cfg config.Config) error {
	if flagKey != "" {
		return output.WriteValue(w, cfg.Flatten(), flagKey)
	}

	switch flagOutput {
	case "yaml", "":
		return output.WriteYAML(w, cfg)
	case "json":
		return output.WriteJSON(w, cfg)
	case "flat":
		return output.WriteFlat(w, cfg.Flatten())
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}
