package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/config"
	"github.com/devguard-ai/devguard/internal/fixtures"
	"github.com/devguard-ai/devguard/internal/logging"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/ui"
)

var (
	cfgFile  string
	debug    bool
	noBanner bool
	output   string

	cfg     *config.Config
	catalog *fixtures.Catalog
	logger  *zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "devguard",
	Short: "DevGuard AI shows code security findings for your repositories",
	Long: `DevGuard AI is a code security dashboard. It lists the findings of the latest scan per file,
the scan history and weekly trends of a repository, and the notification, webhook and scan
frequency settings of your account.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noBanner, "no-banner", false, "Do not print the banner")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: table or json (default from config)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.OutputFormat = output
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}

	logger = logging.Init(debug, cfg.Log.Level, cfg.NoColor, os.Stderr)

	catalog, err = fixtures.LoadDir(cfg.FixturesDir)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}
	if err := selectRepository(catalog, cfg.Repository); err != nil {
		return err
	}

	logger.Debug().
		Str("config", cfgFile).
		Str("fixtures", cfg.FixturesDir).
		Str("repository", catalog.Repository.FullName()).
		Msg("loaded catalogue")
	return nil
}

// selectRepository replaces the repository summary with the named entry of the
// repository list. An empty name keeps the catalogue's own summary.
func selectRepository(cat *fixtures.Catalog, name string) error {
	if name == "" {
		return nil
	}
	for _, r := range cat.Repositories {
		if r.FullName() == name {
			cat.Repository = r
			return nil
		}
	}
	return fmt.Errorf("repository %q not found in fixtures", name)
}

func shell(page nav.Page) nav.Shell {
	return nav.Shell{Connected: cfg.Connected, Plan: cfg.Plan, Active: page}
}

func jsonOutput() bool {
	return cfg.OutputFormat == "json"
}

func printBanner(page nav.Page) {
	if noBanner || jsonOutput() {
		return
	}
	ui.PrintBanner(shell(page))
}
