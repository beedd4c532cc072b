package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/notifications"
	"github.com/devguard-ai/devguard/internal/settings"
	"github.com/devguard-ai/devguard/internal/ui"
)

var payloadEvent string

type settingsReport struct {
	Notifications settings.NotificationPreferences  `json:"notifications"`
	ScanFrequency settings.ScanFrequencyPreferences `json:"scanFrequency"`
	Webhooks      []models.Webhook                  `json:"webhooks"`
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show notification, webhook and scan frequency settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := settingsReport{
			Notifications: settings.NewNotificationPanel(nil).Preferences(),
			ScanFrequency: settings.NewScanFrequencyPanel(nil).Preferences(),
			Webhooks:      newWebhookPanel(nil).List(),
		}
		if jsonOutput() {
			return ui.WriteJSON(cmd.OutOrStdout(), report)
		}

		printBanner(nav.PageSettings)
		ui.PrintNotificationSettings(report.Notifications)
		ui.PrintWebhooks(report.Webhooks)
		ui.PrintScanFrequencySettings(report.ScanFrequency)
		return nil
	},
}

var webhooksCmd = &cobra.Command{
	Use:   "webhooks",
	Short: "Manage webhook endpoints for this session",
}

var webhooksAddCmd = &cobra.Command{
	Use:   "add URL...",
	Short: "Validate and add webhook endpoints, then list them",
	Long:  `Adds each URL to the session's webhook list. Nothing is saved; the resulting list is printed.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var n notifications.Notifier = ui.NoticePrinter{}
		if jsonOutput() {
			n = nil
		} else {
			printBanner(nav.PageSettings)
		}
		panel := newWebhookPanel(n)

		rejected := 0
		for _, u := range args {
			if _, err := panel.Add(u); err != nil {
				if errors.Is(err, settings.ErrEmptyURL) {
					continue
				}
				logger.Debug().Err(err).Str("url", u).Msg("webhook rejected")
				rejected++
			}
		}

		if jsonOutput() {
			if err := ui.WriteJSON(cmd.OutOrStdout(), panel.List()); err != nil {
				return err
			}
		} else {
			ui.PrintWebhooks(panel.List())
		}

		if rejected > 0 {
			return fmt.Errorf("%d of %d webhook URLs rejected: %w", rejected, len(args), settings.ErrInvalidURL)
		}
		return nil
	},
}

var webhooksPayloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Print the payload a webhook receives",
	Long:  `Prints the documented example payload for an event. The payload is illustrative only and is never sent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		event := models.WebhookEvent(payloadEvent)
		if !event.Valid() {
			return fmt.Errorf("%w: unknown event %q", settings.ErrInvalidValue, payloadEvent)
		}

		payload := notifications.ExamplePayload(event, catalog.Repository.FullName(), catalog.Files)
		data, err := notifications.MarshalPayload(payload)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	webhooksPayloadCmd.Flags().StringVar(&payloadEvent, "event", string(models.EventHighSeverity), "Event to build the payload for")

	webhooksCmd.AddCommand(webhooksAddCmd)
	webhooksCmd.AddCommand(webhooksPayloadCmd)
	settingsCmd.AddCommand(webhooksCmd)
	rootCmd.AddCommand(settingsCmd)
}

func newWebhookPanel(n notifications.Notifier) *settings.WebhookPanel {
	return settings.NewWebhookPanel(catalog.Webhooks, n, logger).
		WithPayloadSource(catalog.Repository.FullName(), catalog.Files)
}
