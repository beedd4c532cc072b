package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/nav"
)

const version = "v1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of DevGuard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", nav.ProductName, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
