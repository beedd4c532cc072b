package settings

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/notifications"
)

var (
	ErrEmptyURL        = errors.New("webhook url is empty")
	ErrInvalidURL      = errors.New("invalid webhook url")
	ErrWebhookNotFound = errors.New("webhook not found")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("url_port", validPort)
	return v
}

// validPort rejects URLs whose explicit port is outside 0-65535.
func validPort(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	p := u.Port()
	if p == "" {
		return true
	}
	n, err := strconv.Atoi(p)
	return err == nil && n >= 0 && n <= 65535
}

type WebhookPanel struct {
	hooks      []models.Webhook
	notifier   notifications.Notifier
	logger     *zerolog.Logger
	newID      func() string
	repository string
	files      []models.FileWithFindings
}

func NewWebhookPanel(initial []models.Webhook, n notifications.Notifier, logger *zerolog.Logger) *WebhookPanel {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	hooks := make([]models.Webhook, len(initial))
	copy(hooks, initial)
	return &WebhookPanel{
		hooks:      hooks,
		notifier:   notifierOrDiscard(n),
		logger:     logger,
		newID:      uuid.NewString,
		repository: "org/repo",
	}
}

// WithPayloadSource sets the repository and findings test payloads are built from.
func (p *WebhookPanel) WithPayloadSource(repository string, files []models.FileWithFindings) *WebhookPanel {
	p.repository = repository
	p.files = files
	return p
}

// List returns a copy of the configured webhooks in insertion order.
func (p *WebhookPanel) List() []models.Webhook {
	out := make([]models.Webhook, len(p.hooks))
	copy(out, p.hooks)
	return out
}

func (p *WebhookPanel) Len() int {
	return len(p.hooks)
}

// Add validates rawURL and appends an enabled webhook subscribed to the default
// events. Blank input is ignored without a notice; a malformed URL produces an
// error notice and leaves the list unchanged.
func (p *WebhookPanel) Add(rawURL string) (models.Webhook, error) {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return models.Webhook{}, ErrEmptyURL
	}

	if err := validate.Var(u, "required,url,url_port"); err != nil {
		p.notifier.Notify(notifications.Notice{
			Title:       "Invalid URL",
			Description: "Please enter a valid webhook URL.",
			Variant:     notifications.VariantDestructive,
		})
		return models.Webhook{}, fmt.Errorf("%w: %q", ErrInvalidURL, u)
	}

	events := make([]models.WebhookEvent, len(models.DefaultWebhookEvents))
	copy(events, models.DefaultWebhookEvents)

	hook := models.Webhook{
		ID:      p.newID(),
		URL:     u,
		Enabled: true,
		Events:  events,
	}
	p.hooks = append(p.hooks, hook)
	p.logger.Debug().Str("id", hook.ID).Str("url", hook.URL).Msg("webhook added")

	p.notifier.Notify(notifications.Notice{
		Title:       "Webhook added",
		Description: "Your webhook has been configured.",
		Variant:     notifications.VariantDefault,
	})
	return hook, nil
}

func (p *WebhookPanel) Remove(id string) error {
	i := p.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWebhookNotFound, id)
	}
	p.hooks = append(p.hooks[:i], p.hooks[i+1:]...)
	p.logger.Debug().Str("id", id).Msg("webhook removed")

	p.notifier.Notify(notifications.Notice{
		Title:       "Webhook removed",
		Description: "The webhook has been deleted.",
		Variant:     notifications.VariantDefault,
	})
	return nil
}

func (p *WebhookPanel) Toggle(id string) error {
	i := p.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWebhookNotFound, id)
	}
	p.hooks[i].Enabled = !p.hooks[i].Enabled
	return nil
}

// Test builds the payload the webhook would receive for its first event. Nothing
// is sent.
func (p *WebhookPanel) Test(id string) (models.WebhookPayload, error) {
	i := p.index(id)
	if i < 0 {
		return models.WebhookPayload{}, fmt.Errorf("%w: %s", ErrWebhookNotFound, id)
	}

	event := models.EventScanComplete
	if len(p.hooks[i].Events) > 0 {
		event = p.hooks[i].Events[0]
	}
	payload := notifications.ExamplePayload(event, p.repository, p.files)
	p.logger.Debug().Str("id", id).Str("event", string(event)).Msg("simulated webhook test")

	p.notifier.Notify(notifications.Notice{
		Title:       "Test sent",
		Description: "A test payload has been sent to your webhook.",
		Variant:     notifications.VariantDefault,
	})
	return payload, nil
}

func (p *WebhookPanel) index(id string) int {
	for i, h := range p.hooks {
		if h.ID == id {
			return i
		}
	}
	return -1
}
