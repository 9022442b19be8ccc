package extractor

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"restockwatch/internal/config"
	"restockwatch/internal/models"
	"restockwatch/internal/urlhandler"
)

// ExtractionResult holds everything the change detector needs from one page:
// the structured product records (original display text) and the
// order-independent content fingerprint.
type ExtractionResult struct {
	Products        []models.ProductRecord
	Fingerprint     string
	FingerprintText string
}

// Extractor turns raw page markup into product records and a page
// fingerprint. It never fails: malformed markup or unmatched selectors yield
// zero products and the empty-content fingerprint.
type Extractor struct {
	cfg    config.ExtractorConfig
	rules  []SiteRule
	logger zerolog.Logger
}

// New creates an Extractor. Extra site rules from the config take precedence
// over the built-in rules.
func New(cfg config.ExtractorConfig, logger zerolog.Logger) *Extractor {
	rules := make([]SiteRule, 0, len(cfg.ExtraSiteRules)+3)
	for _, rc := range cfg.ExtraSiteRules {
		rules = append(rules, ruleFromConfig(rc))
	}
	rules = append(rules, DefaultSiteRules()...)

	return &Extractor{
		cfg:    cfg,
		rules:  rules,
		logger: logger.With().Str("component", "Extractor").Logger(),
	}
}

// Extract parses the markup, applies the site ruleset matching pageURL (or
// the generic keyword fallback), and computes the page fingerprint.
func (e *Extractor) Extract(pageURL string, body []byte) ExtractionResult {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		e.logger.Warn().Err(err).Str("url", pageURL).Msg("Failed to parse page markup, treating as zero products")
		return e.buildResult(nil)
	}

	e.stripVolatileElements(doc)

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var products []models.ProductRecord
	if rule, ok := e.ruleFor(pageURL); ok {
		products = e.extractWithRule(doc, rule, base)
		if len(products) == 0 {
			e.logger.Debug().Str("url", pageURL).Str("rule", rule.Name).Msg("Site rule matched no products, trying keyword fallback")
		}
	}
	if len(products) == 0 {
		products = e.extractFallback(doc, base)
	}

	return e.buildResult(products)
}

func (e *Extractor) buildResult(products []models.ProductRecord) ExtractionResult {
	text := BuildFingerprintText(products)
	return ExtractionResult{
		Products:        products,
		Fingerprint:     Fingerprint(text),
		FingerprintText: text,
	}
}

// stripVolatileElements drops content unlikely to be stable across
// identical-content reloads: scripts, styles, and any element whose class or
// id carries a volatile marker (timestamps, session tokens).
func (e *Extractor) stripVolatileElements(doc *goquery.Document) {
	doc.Find("script, style, noscript").Remove()

	if len(e.cfg.VolatileMarkers) == 0 {
		return
	}
	doc.Find("[class], [id]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		attrs := strings.ToLower(class + " " + id)
		for _, marker := range e.cfg.VolatileMarkers {
			if strings.Contains(attrs, strings.ToLower(marker)) {
				s.Remove()
				return
			}
		}
	})
}

func (e *Extractor) ruleFor(pageURL string) (SiteRule, bool) {
	for _, rule := range e.rules {
		if rule.matches(pageURL) {
			return rule, true
		}
	}
	return SiteRule{}, false
}

func (e *Extractor) extractWithRule(doc *goquery.Document, rule SiteRule, base *url.URL) []models.ProductRecord {
	var products []models.ProductRecord

	containers := firstMatching(doc.Selection, rule.ContainerSelectors)
	if containers == nil {
		return nil
	}

	containers.Each(func(_ int, s *goquery.Selection) {
		title := collapseWhitespace(firstText(s, rule.TitleSelectors))
		if len(title) < e.cfg.MinTitleLength {
			return
		}
		products = append(products, models.ProductRecord{
			Title:        title,
			Price:        collapseWhitespace(firstText(s, rule.PriceSelectors)),
			Availability: collapseWhitespace(firstText(s, rule.AvailabilitySelectors)),
			Link:         e.resolveLink(firstHref(s, rule.LinkSelectors), base),
		})
	})
	return products
}

// extractFallback is the degraded pass used when no rule applies or a site
// redesigned its markup beyond the selector set: keep any link-ish element
// whose text mentions a tracked-category keyword.
func (e *Extractor) extractFallback(doc *goquery.Document, base *url.URL) []models.ProductRecord {
	var products []models.ProductRecord
	seen := make(map[string]struct{})

	doc.Find("a[href], li, article").Each(func(_ int, s *goquery.Selection) {
		title := collapseWhitespace(s.Text())
		if len(title) < e.cfg.MinTitleLength {
			return
		}
		if !e.containsKeyword(title) {
			return
		}

		key := strings.ToLower(title)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		href, ok := s.Attr("href")
		if !ok {
			href, _ = s.Find("a[href]").First().Attr("href")
		}
		products = append(products, models.ProductRecord{
			Title: title,
			Link:  e.resolveLink(href, base),
		})
	})
	return products
}

func (e *Extractor) containsKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range e.cfg.FallbackKeywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func (e *Extractor) resolveLink(href string, base *url.URL) string {
	if href == "" {
		return ""
	}
	resolved, err := urlhandler.ResolveURL(href, base)
	if err != nil {
		return ""
	}
	return resolved
}

// firstMatching returns the selection for the first selector in the chain
// that matches anything, or nil when none do.
func firstMatching(s *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := s.Find(sel); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// firstText returns the text of the first sub-element matched by the chain.
func firstText(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if found := s.Find(sel); found.Length() > 0 {
			return found.First().Text()
		}
	}
	return ""
}

// firstHref returns the href of the first sub-element matched by the chain.
func firstHref(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if found := s.Find(sel); found.Length() > 0 {
			if href, ok := found.First().Attr("href"); ok {
				return href
			}
		}
	}
	return ""
}
