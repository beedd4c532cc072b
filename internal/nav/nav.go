// Package nav holds the display state of the top navigation bar.
package nav

import (
	"strings"

	"github.com/devguard-ai/devguard/internal/models"
)

type Page int

const (
	PageDashboard Page = iota
	PageRepository
	PageSettings
)

var Pages = []Page{PageDashboard, PageRepository, PageSettings}

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageRepository:
		return "Repository"
	case PageSettings:
		return "Settings"
	}
	return "Unknown"
}

const ProductName = "DevGuard AI"

type Shell struct {
	Connected bool
	Plan      models.Plan
	Active    Page
}

func (s Shell) ConnectionLabel() string {
	if s.Connected {
		return "Connected"
	}
	return "Disconnected"
}

func (s Shell) PlanLabel() string {
	return strings.ToUpper(string(s.Plan))
}

// ShowUpgrade reports whether the "Upgrade to Pro" call to action is visible.
func (s Shell) ShowUpgrade() bool {
	return s.Plan != models.PlanPro
}

type Tab struct {
	Page   Page
	Label  string
	Active bool
}

func (s Shell) Tabs() []Tab {
	tabs := make([]Tab, 0, len(Pages))
	for _, p := range Pages {
		tabs = append(tabs, Tab{Page: p, Label: p.String(), Active: p == s.Active})
	}
	return tabs
}
