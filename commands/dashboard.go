package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/logging"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long:  `Opens the full-screen dashboard with the repository list, per-file findings, scan history and settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal, so logs go to the configured file or nowhere.
		out, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer out.Close()
		l := logging.Init(debug, cfg.Log.Level, cfg.NoColor, out)

		m := tui.New(catalog, shell(nav.PageDashboard), l)
		return tui.Run(m, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
