package config

// NotificationConfig defines configuration for Discord notifications.
type NotificationConfig struct {
	DiscordWebhookURL string `json:"discord_webhook_url,omitempty" yaml:"discord_webhook_url,omitempty" validate:"omitempty,url"`
	WebhookUsername   string `json:"webhook_username,omitempty" yaml:"webhook_username,omitempty"`
	MaxProductFields  int    `json:"max_product_fields,omitempty" yaml:"max_product_fields,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration.
// The webhook URL is normally supplied via the DISCORD_WEBHOOK_URL
// environment variable, which takes precedence over this section.
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		DiscordWebhookURL: "",
		WebhookUsername:   "RestockWatch",
		MaxProductFields:  5,
	}
}
