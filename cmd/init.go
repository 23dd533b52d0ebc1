package cmd

import (
	"fmt"
	"os"

	"github.com/gitcontrib/go-gitcontrib/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration file",
	Long: "init writes a configuration file holding the default values plus\n" +
		"placeholders for the fields that have no default. The result passes\n" +
		"validate unchanged.",
	Args: cobra.MaximumNArgs(1),
	RunE: initRunE,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func initRunE(cmd *cobra.Command, args []string) error {
	path := "config.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if !flagForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	data, err := yaml.Marshal(starterDocument())
	if err != nil {
		return fmt.Errorf("rendering starter configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// starterDocument fills the required fields the defaults leave unset.
func starterDocument() *config.Document {
	version := "0.1.0"
	branch := "main"
	dbURL := "sqlite:///./git_analyzer.db"

	doc := config.DefaultDocument()
	doc.Version = &version
	doc.Git.DefaultBranch = &branch
	doc.Database.URL = &dbURL
	return doc
}
