package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/findings"
	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/ui"
)

var (
	expandPaths []string
	expandAll   bool
	detailFile  string
)

type findingsReport struct {
	Repository string                `json:"repository"`
	Totals     models.SeverityCounts `json:"totals"`
	Files      []fileReport          `json:"files"`
}

type fileReport struct {
	Path     string                `json:"path"`
	Counts   models.SeverityCounts `json:"counts"`
	Expanded bool                  `json:"expanded"`
	Findings []models.Finding      `json:"findings,omitempty"`
}

var findingsCmd = &cobra.Command{
	Use:   "findings",
	Short: "Show findings of the latest scan grouped by file",
	Long:  `Shows one line per file with its severity counts. Files named with --expand (or all files with --all) also list their findings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg := newAggregator()
		for _, f := range agg.Files() {
			if expandAll {
				agg.Toggle(f.Path)
			}
		}
		for _, path := range expandPaths {
			if !hasFile(agg, path) {
				return fmt.Errorf("no findings for file %q", path)
			}
			if !agg.IsExpanded(path) {
				agg.Toggle(path)
			}
		}

		if jsonOutput() {
			return ui.WriteJSON(cmd.OutOrStdout(), buildFindingsReport(agg))
		}

		printBanner(nav.PageRepository)
		ui.PrintRepositoryHeader(catalog.Repository, agg.Totals())
		ui.PrintFileFindings(agg)
		return nil
	},
}

var findingsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show the details and remediation of one finding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agg := newAggregator()
		if !agg.Select(args[0], detailFile) {
			return nil
		}
		d, _ := agg.Selected()

		if jsonOutput() {
			return ui.WriteJSON(cmd.OutOrStdout(), d)
		}
		printBanner(nav.PageRepository)
		ui.PrintFindingDetails(d)
		return nil
	},
}

func init() {
	findingsCmd.Flags().StringSliceVarP(&expandPaths, "expand", "e", nil, "Expand the findings of a file (repeatable)")
	findingsCmd.Flags().BoolVarP(&expandAll, "all", "a", false, "Expand every file")
	findingsShowCmd.Flags().StringVarP(&detailFile, "file", "f", "", "File path to report when the record has none")

	findingsCmd.AddCommand(findingsShowCmd)
	rootCmd.AddCommand(findingsCmd)
}

func newAggregator() *findings.Aggregator {
	return findings.New(catalog.Files, findings.NewDetailIndex(catalog.Details), logger)
}

func hasFile(agg *findings.Aggregator, path string) bool {
	for _, f := range agg.Files() {
		if f.Path == path {
			return true
		}
	}
	return false
}

func buildFindingsReport(agg *findings.Aggregator) findingsReport {
	report := findingsReport{
		Repository: catalog.Repository.FullName(),
		Totals:     agg.Totals(),
		Files:      make([]fileReport, 0, len(agg.Files())),
	}
	for _, f := range agg.Files() {
		fr := fileReport{
			Path:     f.Path,
			Counts:   findings.CountSeverities(f.Findings),
			Expanded: agg.IsExpanded(f.Path),
		}
		if fr.Expanded {
			fr.Findings = f.Findings
		}
		report.Files = append(report.Files, fr)
	}
	return report
}
