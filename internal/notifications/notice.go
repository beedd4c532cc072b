// Package notifications carries the transient notices the dashboard shows after
// a settings action, and builds the illustrative webhook payload.
package notifications

//go:generate mockgen -package notifiermock -destination ../../mocks/notifiermock/notifier_mock.go github.com/devguard-ai/devguard/internal/notifications Notifier

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

func (n Notice) IsError() bool {
	return n.Variant == VariantDestructive
}

type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// Recorder keeps the notices it receives; the dashboard shows the latest one.
type Recorder struct {
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.notices = append(r.notices, n)
}

func (r *Recorder) Last() (Notice, bool) {
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

func (r *Recorder) All() []Notice {
	return r.notices
}

func (r *Recorder) Clear() {
	r.notices = nil
}
