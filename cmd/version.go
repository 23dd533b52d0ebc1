package cmd

import (
	"fmt"

	"github.com/gitcontrib/go-gitcontrib/internal/version"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gitcontrib binary version",
	Run: func(cmd *cobra.Command, _ []string) {
		// Canonicalize when the build version parses ("v1.2" -> "1.2.0");
		// development builds print the raw value.
		if v, ok := version.TryParse(Version); ok {
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
