// Package settings holds the in-memory state of the notification, webhook and
// scan frequency panels. Nothing is persisted; Save only surfaces a notice.
package settings

import (
	"errors"

	"github.com/devguard-ai/devguard/internal/notifications"
)

var (
	ErrUnknownField = errors.New("unknown settings field")
	ErrInvalidValue = errors.New("invalid settings value")
)

func notifierOrDiscard(n notifications.Notifier) notifications.Notifier {
	if n == nil {
		return notifications.NotifierFunc(func(notifications.Notice) {})
	}
	return n
}

func savedNotice(description string) notifications.Notice {
	return notifications.Notice{
		Title:       "Settings saved",
		Description: description,
		Variant:     notifications.VariantDefault,
	}
}
