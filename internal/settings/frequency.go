package settings

import (
	"fmt"

	"github.com/devguard-ai/devguard/internal/notifications"
)

type ScanTrigger string

const (
	TriggerOnPR   ScanTrigger = "on_pr"
	TriggerOnPush ScanTrigger = "on_push"
	TriggerManual ScanTrigger = "manual"
)

var ScanTriggers = []ScanTrigger{TriggerOnPR, TriggerOnPush, TriggerManual}

func (t ScanTrigger) Label() string {
	switch t {
	case TriggerOnPR:
		return "On pull request"
	case TriggerOnPush:
		return "On every push"
	case TriggerManual:
		return "Manual only"
	}
	return string(t)
}

type ScheduleFrequency string

const (
	ScheduleDaily  ScheduleFrequency = "daily"
	ScheduleWeekly ScheduleFrequency = "weekly"
)

var ScheduleFrequencies = []ScheduleFrequency{ScheduleDaily, ScheduleWeekly}

func (f ScheduleFrequency) Label() string {
	switch f {
	case ScheduleDaily:
		return "Daily at 2:00 AM UTC"
	case ScheduleWeekly:
		return "Weekly on Mondays"
	}
	return string(f)
}

type ScanField string

const (
	FieldScheduledScans   ScanField = "scheduledScans"
	FieldScanOnPush       ScanField = "scanOnPush"
	FieldScanDependencies ScanField = "scanDependencies"
	FieldDeepScan         ScanField = "deepScan"
)

var ScanFields = []ScanField{FieldScheduledScans, FieldScanOnPush, FieldScanDependencies, FieldDeepScan}

type ScanFrequencyPreferences struct {
	ScanTrigger       ScanTrigger       `json:"scanTrigger"`
	ScheduledScans    bool              `json:"scheduledScans"`
	ScheduleFrequency ScheduleFrequency `json:"scheduleFrequency"`
	ScanOnPush        bool              `json:"scanOnPush"`
	ScanDependencies  bool              `json:"scanDependencies"`
	DeepScan          bool              `json:"deepScan"`
}

func DefaultScanFrequencyPreferences() ScanFrequencyPreferences {
	return ScanFrequencyPreferences{
		ScanTrigger:       TriggerOnPR,
		ScheduleFrequency: ScheduleDaily,
		ScanOnPush:        true,
		ScanDependencies:  true,
	}
}

func (p *ScanFrequencyPreferences) field(f ScanField) (*bool, error) {
	switch f {
	case FieldScheduledScans:
		return &p.ScheduledScans, nil
	case FieldScanOnPush:
		return &p.ScanOnPush, nil
	case FieldScanDependencies:
		return &p.ScanDependencies, nil
	case FieldDeepScan:
		return &p.DeepScan, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func (p ScanFrequencyPreferences) Enabled(f ScanField) bool {
	v, err := p.field(f)
	if err != nil {
		return false
	}
	return *v
}

type ScanFrequencyPanel struct {
	prefs    ScanFrequencyPreferences
	notifier notifications.Notifier
}

func NewScanFrequencyPanel(n notifications.Notifier) *ScanFrequencyPanel {
	return &ScanFrequencyPanel{
		prefs:    DefaultScanFrequencyPreferences(),
		notifier: notifierOrDiscard(n),
	}
}

func (p *ScanFrequencyPanel) Preferences() ScanFrequencyPreferences {
	return p.prefs
}

func (p *ScanFrequencyPanel) SetTrigger(t ScanTrigger) error {
	switch t {
	case TriggerOnPR, TriggerOnPush, TriggerManual:
		p.prefs.ScanTrigger = t
		return nil
	}
	return fmt.Errorf("%w: scan trigger %q", ErrInvalidValue, t)
}

func (p *ScanFrequencyPanel) CycleTrigger() {
	p.prefs.ScanTrigger = next(ScanTriggers, p.prefs.ScanTrigger)
}

// SetScheduleFrequency keeps the chosen frequency even while scheduled scans
// are off; it only shows once they are enabled.
func (p *ScanFrequencyPanel) SetScheduleFrequency(f ScheduleFrequency) error {
	switch f {
	case ScheduleDaily, ScheduleWeekly:
		p.prefs.ScheduleFrequency = f
		return nil
	}
	return fmt.Errorf("%w: schedule frequency %q", ErrInvalidValue, f)
}

func (p *ScanFrequencyPanel) CycleScheduleFrequency() {
	p.prefs.ScheduleFrequency = next(ScheduleFrequencies, p.prefs.ScheduleFrequency)
}

func (p *ScanFrequencyPanel) Toggle(f ScanField) error {
	v, err := p.prefs.field(f)
	if err != nil {
		return err
	}
	*v = !*v
	return nil
}

func (p *ScanFrequencyPanel) Save() {
	p.notifier.Notify(savedNotice("Your scan frequency preferences have been updated."))
}
