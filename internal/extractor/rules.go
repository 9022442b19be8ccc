package extractor

import (
	"strings"

	"restockwatch/internal/config"
)

// SiteRule is a selector set for one known retail site. Every selector field
// is a chain: selectors are tried in order and the first one that matches
// wins. Price, availability and link chains may be empty.
type SiteRule struct {
	Name                  string
	URLSubstring          string
	ContainerSelectors    []string
	TitleSelectors        []string
	PriceSelectors        []string
	AvailabilitySelectors []string
	LinkSelectors         []string
}

// DefaultSiteRules returns the built-in selector sets for the retail sites
// the tool watches out of the box. Rules from extractor_config.extra_site_rules
// are prepended so they win over the built-ins.
func DefaultSiteRules() []SiteRule {
	return []SiteRule{
		{
			Name:                  "pokemoncenter",
			URLSubstring:          "pokemoncenter.com",
			ContainerSelectors:    []string{"[class*='product-tile']", "[class*='product-grid'] li"},
			TitleSelectors:        []string{"[class*='product-tile__name']", "[class*='product-name']", "h3"},
			PriceSelectors:        []string{"[class*='product-tile__price']", "[class*='price']"},
			AvailabilitySelectors: []string{"[class*='availability']", "[class*='badge']"},
			LinkSelectors:         []string{"a[href]"},
		},
		{
			Name:                  "gamestop",
			URLSubstring:          "gamestop.ca",
			ContainerSelectors:    []string{"[class*='product-grid-tile']", "[class*='product-tile']"},
			TitleSelectors:        []string{"[class*='pd-name']", "[class*='link-name']", "h3"},
			PriceSelectors:        []string{"[class*='actual-price']", "[class*='price']"},
			AvailabilitySelectors: []string{"[class*='availability']", "[class*='stock']"},
			LinkSelectors:         []string{"a[href]"},
		},
		{
			Name:                  "walmart",
			URLSubstring:          "walmart.ca",
			ContainerSelectors:    []string{"[data-item-id]", "[class*='product-card']"},
			TitleSelectors:        []string{"[data-automation='name']", "[class*='title']"},
			PriceSelectors:        []string{"[data-automation='current-price']", "[class*='price']"},
			AvailabilitySelectors: []string{"[data-automation='fulfillment']", "[class*='availability']"},
			LinkSelectors:         []string{"a[href]"},
		},
	}
}

// ruleFromConfig converts a config rule into a SiteRule.
func ruleFromConfig(rc config.SiteRuleConfig) SiteRule {
	return SiteRule{
		Name:                  rc.Name,
		URLSubstring:          rc.URLSubstring,
		ContainerSelectors:    rc.ContainerSelectors,
		TitleSelectors:        rc.TitleSelectors,
		PriceSelectors:        rc.PriceSelectors,
		AvailabilitySelectors: rc.AvailabilitySelectors,
		LinkSelectors:         rc.LinkSelectors,
	}
}

// matches reports whether this rule applies to the given page URL.
func (r SiteRule) matches(pageURL string) bool {
	return r.URLSubstring != "" && strings.Contains(strings.ToLower(pageURL), strings.ToLower(r.URLSubstring))
}
