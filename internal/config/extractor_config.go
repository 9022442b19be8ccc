package config

// SiteRuleConfig describes one site-specific selector set. Selector fields
// are chains tried in order; the first selector yielding a match wins.
type SiteRuleConfig struct {
	Name                  string   `json:"name" yaml:"name" validate:"required"`
	URLSubstring          string   `json:"url_substring" yaml:"url_substring" validate:"required"`
	ContainerSelectors    []string `json:"container_selectors" yaml:"container_selectors" validate:"required,min=1,dive,required"`
	TitleSelectors        []string `json:"title_selectors" yaml:"title_selectors" validate:"required,min=1,dive,required"`
	PriceSelectors        []string `json:"price_selectors,omitempty" yaml:"price_selectors,omitempty"`
	AvailabilitySelectors []string `json:"availability_selectors,omitempty" yaml:"availability_selectors,omitempty"`
	LinkSelectors         []string `json:"link_selectors,omitempty" yaml:"link_selectors,omitempty"`
}

// ExtractorConfig defines configuration for product extraction.
type ExtractorConfig struct {
	MinTitleLength   int              `json:"min_title_length,omitempty" yaml:"min_title_length,omitempty" validate:"omitempty,min=1"`
	FallbackKeywords []string         `json:"fallback_keywords,omitempty" yaml:"fallback_keywords,omitempty" validate:"omitempty,dive,required"`
	VolatileMarkers  []string         `json:"volatile_markers,omitempty" yaml:"volatile_markers,omitempty"`
	ExtraSiteRules   []SiteRuleConfig `json:"extra_site_rules,omitempty" yaml:"extra_site_rules,omitempty" validate:"omitempty,dive"`
}

// NewDefaultExtractorConfig creates default extractor configuration.
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MinTitleLength: 6,
		FallbackKeywords: []string{
			"pokemon",
			"pokémon",
			"booster",
			"elite trainer",
			"tcg",
		},
		VolatileMarkers: []string{
			"timestamp",
			"session",
			"csrf",
			"token",
			"nonce",
			"clock",
			"datetime",
		},
	}
}
