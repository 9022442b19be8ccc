package config

// Default logging settings.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 10
	DefaultMaxLogBackups = 3
)

// ConfigPathEnvVar points at the configuration file when no -config flag is
// given.
const ConfigPathEnvVar = "RESTOCKWATCH_CONFIG_PATH"

// WebhookEnvVar supplies the Discord webhook URL. It overrides the value from
// the config file; if neither is set, startup fails.
const WebhookEnvVar = "DISCORD_WEBHOOK_URL"
