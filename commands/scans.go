package commands

import (
	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/history"
	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/ui"
)

var scansCmd = &cobra.Command{
	Use:   "scans",
	Short: "Show the scan history of the repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput() {
			return ui.WriteJSON(cmd.OutOrStdout(), catalog.Scans)
		}
		printBanner(nav.PageRepository)
		ui.PrintScanHistory(catalog.Scans)
		return nil
	},
}

type trendsReport struct {
	Points  []models.TrendPoint `json:"points"`
	Summary *history.Summary    `json:"summary,omitempty"`
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show weekly vulnerability totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput() {
			report := trendsReport{Points: catalog.Trends}
			if s, ok := history.Summarize(catalog.Trends); ok {
				report.Summary = &s
			}
			return ui.WriteJSON(cmd.OutOrStdout(), report)
		}
		printBanner(nav.PageRepository)
		ui.PrintTrends(catalog.Trends)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scansCmd)
	rootCmd.AddCommand(trendsCmd)
}
