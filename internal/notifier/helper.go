package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"restockwatch/internal/config"
	"restockwatch/internal/models"
)

// NotificationHelper formats and delivers alerts. Delivery failures are
// logged and swallowed: a failed notification must never abort the polling
// loop, and the next round is the implicit retry.
type NotificationHelper struct {
	notifier   *DiscordNotifier
	cfg        config.NotificationConfig
	webhookURL string
	logger     zerolog.Logger
}

// NewNotificationHelper creates a NotificationHelper bound to one webhook.
func NewNotificationHelper(notifier *DiscordNotifier, cfg config.NotificationConfig, webhookURL string, logger zerolog.Logger) *NotificationHelper {
	return &NotificationHelper{
		notifier:   notifier,
		cfg:        cfg,
		webhookURL: webhookURL,
		logger:     logger.With().Str("component", "NotificationHelper").Logger(),
	}
}

// NotifyNewProducts sends one alert for the new products found on a page.
// An empty product list is a no-op: the detector gates on the Changed
// outcome, but the helper re-asserts it so an empty alert is never produced.
func (nh *NotificationHelper) NotifyNewProducts(ctx context.Context, pageURL string, newProducts []models.ProductRecord, diffSummary string) {
	if len(newProducts) == 0 {
		return
	}

	payload := FormatNewProductsMessage(pageURL, newProducts, diffSummary, nh.cfg.MaxProductFields, nh.cfg.WebhookUsername, time.Now())
	if err := nh.notifier.Send(ctx, nh.webhookURL, payload); err != nil {
		nh.logger.Error().Err(err).Str("url", pageURL).Int("new_products", len(newProducts)).Msg("Failed to deliver change notification")
		return
	}
	nh.logger.Info().Str("url", pageURL).Int("new_products", len(newProducts)).Msg("Change notification sent")
}

// NotifyStartup announces the monitored page set once at startup.
func (nh *NotificationHelper) NotifyStartup(ctx context.Context, pageURLs []string) {
	payload := FormatStartupMessage(pageURLs, nh.cfg.WebhookUsername, time.Now())
	if err := nh.notifier.Send(ctx, nh.webhookURL, payload); err != nil {
		nh.logger.Error().Err(err).Msg("Failed to deliver startup notification")
	}
}
