package ui

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/devguard-ai/devguard/internal/nav"
)

func PrintBanner(shell nav.Shell) {
	logo := `
    ____             ______                     __   ___    ____
   / __ \___ _   __/ ____/_  ______ __________/ /  /   |  /  _/
  / / / / _ \ | / / / __/ / / / __ ` + "`" + `/ ___/ __  /  / /| |  / /
 / /_/ /  __/ |/ / /_/ / /_/ / /_/ / /  / /_/ /  / ___ |_/ /
/_____/\___/|___/\____/\__,_/\__,_/_/   \__,_/  /_/  |_/___/
`
	pterm.FgCyan.Println(logo)
	pterm.DefaultCenter.Println(pterm.FgGray.Sprint("Code security dashboard"))
	pterm.Println(ShellLine(shell))
	pterm.Println()
}

// ShellLine renders the navigation bar: tabs on the left, connection and plan on the right.
func ShellLine(shell nav.Shell) string {
	var tabs []string
	for _, t := range shell.Tabs() {
		if t.Active {
			tabs = append(tabs, pterm.NewStyle(pterm.Bold, pterm.Underscore).Sprint(t.Label))
			continue
		}
		tabs = append(tabs, pterm.FgGray.Sprint(t.Label))
	}

	conn := pterm.FgGreen.Sprint("● " + shell.ConnectionLabel())
	if !shell.Connected {
		conn = pterm.FgRed.Sprint("○ " + shell.ConnectionLabel())
	}

	plan := pterm.FgGray.Sprint("[" + shell.PlanLabel() + "]")
	if !shell.ShowUpgrade() {
		plan = pterm.FgMagenta.Sprint("[" + shell.PlanLabel() + "]")
	}

	parts := []string{pterm.Bold.Sprint(nav.ProductName), strings.Join(tabs, "  "), "GitHub " + conn, plan}
	if shell.ShowUpgrade() {
		parts = append(parts, pterm.FgYellow.Sprint("⚡ Upgrade to Pro"))
	}
	return strings.Join(parts, "  │  ")
}
