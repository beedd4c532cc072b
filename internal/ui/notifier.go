package ui

import (
	"github.com/pterm/pterm"

	"github.com/devguard-ai/devguard/internal/notifications"
)

// NoticePrinter prints notices as pterm prefix lines.
type NoticePrinter struct{}

func (NoticePrinter) Notify(n notifications.Notice) {
	if n.IsError() {
		pterm.Error.Printfln("%s: %s", n.Title, n.Description)
		return
	}
	pterm.Success.Printfln("%s: %s", n.Title, n.Description)
}
