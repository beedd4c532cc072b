package commands

import (
	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/ui"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List connected repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput() {
			return ui.WriteJSON(cmd.OutOrStdout(), catalog.Repositories)
		}
		printBanner(nav.PageDashboard)
		ui.PrintRepositories(catalog.Repositories)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
}
