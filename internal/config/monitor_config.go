package config

import "time"

// MonitorConfig defines the polling behaviour of the page monitor.
type MonitorConfig struct {
	PageURLs                []string `json:"page_urls,omitempty" yaml:"page_urls,omitempty" validate:"omitempty,dive,url"`
	PollIntervalSeconds     int      `json:"poll_interval_seconds,omitempty" yaml:"poll_interval_seconds,omitempty" validate:"omitempty,min=1"`
	InitialPageDelaySeconds int      `json:"initial_page_delay_seconds,omitempty" yaml:"initial_page_delay_seconds,omitempty" validate:"omitempty,min=0"`
	PageDelaySeconds        int      `json:"page_delay_seconds,omitempty" yaml:"page_delay_seconds,omitempty" validate:"omitempty,min=0"`
	HTTPTimeoutSeconds      int      `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	MaxContentSize          int      `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=1"`
	UserAgent               string   `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// PollInterval returns the wait between polling rounds.
func (c MonitorConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// InitialPageDelay returns the inter-page pacing used during the first pass.
func (c MonitorConfig) InitialPageDelay() time.Duration {
	return time.Duration(c.InitialPageDelaySeconds) * time.Second
}

// PageDelay returns the inter-page pacing used during subsequent passes.
func (c MonitorConfig) PageDelay() time.Duration {
	return time.Duration(c.PageDelaySeconds) * time.Second
}

// HTTPTimeout returns the overall per-fetch timeout.
func (c MonitorConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// NewDefaultMonitorConfig creates default monitor configuration. The built-in
// page list covers the retail listing pages the tool was written to watch;
// page_urls in the config file replaces it entirely.
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		PageURLs: []string{
			"https://www.pokemoncenter.com/en-ca/category/trading-card-game",
			"https://www.gamestop.ca/toys-collectibles/trading-cards/pokemon",
			"https://www.walmart.ca/en/browse/toys/trading-cards/pokemon-cards",
		},
		PollIntervalSeconds:     10,
		InitialPageDelaySeconds: 2,
		PageDelaySeconds:        1,
		HTTPTimeoutSeconds:      15,
		MaxContentSize:          5 * 1024 * 1024, // 5MB
		UserAgent:               "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
	}
}
