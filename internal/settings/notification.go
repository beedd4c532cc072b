package settings

import (
	"fmt"

	"github.com/devguard-ai/devguard/internal/notifications"
)

type Digest string

const (
	DigestNever  Digest = "never"
	DigestDaily  Digest = "daily"
	DigestWeekly Digest = "weekly"
)

var Digests = []Digest{DigestNever, DigestDaily, DigestWeekly}

type NotificationField string

const (
	FieldEmailOnHighSeverity   NotificationField = "emailOnHighSeverity"
	FieldEmailOnMediumSeverity NotificationField = "emailOnMediumSeverity"
	FieldEmailOnLowSeverity    NotificationField = "emailOnLowSeverity"
	FieldSlackNotifications    NotificationField = "slackNotifications"
	FieldPRComments            NotificationField = "prComments"
)

// NotificationFields lists the switchable fields in display order.
var NotificationFields = []NotificationField{
	FieldEmailOnHighSeverity,
	FieldEmailOnMediumSeverity,
	FieldEmailOnLowSeverity,
	FieldSlackNotifications,
	FieldPRComments,
}

type NotificationPreferences struct {
	EmailOnHighSeverity   bool   `json:"emailOnHighSeverity"`
	EmailOnMediumSeverity bool   `json:"emailOnMediumSeverity"`
	EmailOnLowSeverity    bool   `json:"emailOnLowSeverity"`
	EmailDigest           Digest `json:"emailDigest"`
	SlackNotifications    bool   `json:"slackNotifications"`
	PRComments            bool   `json:"prComments"`
}

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		EmailOnHighSeverity: true,
		EmailDigest:         DigestDaily,
		SlackNotifications:  true,
		PRComments:          true,
	}
}

func (p *NotificationPreferences) field(f NotificationField) (*bool, error) {
	switch f {
	case FieldEmailOnHighSeverity:
		return &p.EmailOnHighSeverity, nil
	case FieldEmailOnMediumSeverity:
		return &p.EmailOnMediumSeverity, nil
	case FieldEmailOnLowSeverity:
		return &p.EmailOnLowSeverity, nil
	case FieldSlackNotifications:
		return &p.SlackNotifications, nil
	case FieldPRComments:
		return &p.PRComments, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func (p NotificationPreferences) Enabled(f NotificationField) bool {
	v, err := p.field(f)
	if err != nil {
		return false
	}
	return *v
}

type NotificationPanel struct {
	prefs    NotificationPreferences
	notifier notifications.Notifier
}

func NewNotificationPanel(n notifications.Notifier) *NotificationPanel {
	return &NotificationPanel{
		prefs:    DefaultNotificationPreferences(),
		notifier: notifierOrDiscard(n),
	}
}

func (p *NotificationPanel) Preferences() NotificationPreferences {
	return p.prefs
}

func (p *NotificationPanel) Toggle(f NotificationField) error {
	v, err := p.prefs.field(f)
	if err != nil {
		return err
	}
	*v = !*v
	return nil
}

func (p *NotificationPanel) SetDigest(d Digest) error {
	switch d {
	case DigestNever, DigestDaily, DigestWeekly:
		p.prefs.EmailDigest = d
		return nil
	}
	return fmt.Errorf("%w: email digest %q", ErrInvalidValue, d)
}

// CycleDigest advances the digest to the next option, wrapping around.
func (p *NotificationPanel) CycleDigest() {
	p.prefs.EmailDigest = next(Digests, p.prefs.EmailDigest)
}

func (p *NotificationPanel) Save() {
	p.notifier.Notify(savedNotice("Your notification preferences have been updated."))
}

func next[T comparable](options []T, current T) T {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
