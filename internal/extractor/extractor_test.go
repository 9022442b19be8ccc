package extractor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restockwatch/internal/config"
)

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	cfg := config.NewDefaultExtractorConfig()
	cfg.ExtraSiteRules = []config.SiteRuleConfig{
		{
			Name:                  "testshop",
			URLSubstring:          "shop.example.com",
			ContainerSelectors:    []string{".product"},
			TitleSelectors:        []string{".name"},
			PriceSelectors:        []string{".price"},
			AvailabilitySelectors: []string{".stock"},
			LinkSelectors:         []string{"a[href]"},
		},
	}
	return New(cfg, zerolog.Nop())
}

const listingPage = `
<html><body>
<div class="grid">
  <div class="product">
    <span class="name">Scarlet &amp; Violet Booster Box</span>
    <span class="price">$159.99</span>
    <span class="stock">In Stock</span>
    <a href="/products/sv-booster-box">view</a>
  </div>
  <div class="product">
    <span class="name">Charizard ex Premium Collection</span>
    <span class="price">$39.99</span>
    <a href="https://shop.example.com/products/charizard-ex">view</a>
  </div>
  <div class="product">
    <span class="name">ico</span>
    <span class="price">$1.00</span>
  </div>
</div>
</body></html>`

func TestExtract_SiteRule(t *testing.T) {
	e := testExtractor(t)

	res := e.Extract("https://shop.example.com/collections/pokemon", []byte(listingPage))

	require.Len(t, res.Products, 2, "the short 'ico' title must be discarded")

	first := res.Products[0]
	assert.Equal(t, "Scarlet & Violet Booster Box", first.Title)
	assert.Equal(t, "$159.99", first.Price)
	assert.Equal(t, "In Stock", first.Availability)
	assert.Equal(t, "https://shop.example.com/products/sv-booster-box", first.Link, "relative links resolve against the page origin")

	second := res.Products[1]
	assert.Equal(t, "Charizard ex Premium Collection", second.Title)
	assert.Empty(t, second.Availability)
	assert.Equal(t, "https://shop.example.com/products/charizard-ex", second.Link)

	assert.NotEmpty(t, res.Fingerprint)
	assert.NotEqual(t, Fingerprint(""), res.Fingerprint)
}

func TestExtract_VolatileElementsDoNotAffectFingerprint(t *testing.T) {
	e := testExtractor(t)

	withNoise := `
<html><body>
<script>var x = Date.now();</script>
<div id="session-banner">session 8f3a</div>
<div class="product">
  <span class="name">Paldea Evolved Booster Bundle</span>
  <span class="price">$24.99</span>
  <span class="last-updated-timestamp">12:01:44</span>
</div>
</body></html>`
	withoutNoise := `
<html><body>
<div class="product">
  <span class="name">Paldea Evolved Booster Bundle</span>
  <span class="price">$24.99</span>
</div>
</body></html>`

	resA := e.Extract("https://shop.example.com/x", []byte(withNoise))
	resB := e.Extract("https://shop.example.com/x", []byte(withoutNoise))

	require.Len(t, resA.Products, 1)
	assert.Equal(t, resB.Fingerprint, resA.Fingerprint)
}

func TestExtract_FallbackKeywordPass(t *testing.T) {
	e := testExtractor(t)

	// Unknown site, markup matching no rule; the keyword pass must still
	// surface the listing that mentions the tracked category.
	page := `
<html><body>
<ul>
  <li><a href="/deal/123">Pokemon TCG Elite Trainer Box - back in stock</a></li>
  <li><a href="/deal/456">Kitchen blender mega sale</a></li>
</ul>
</body></html>`

	res := e.Extract("https://unknown-retailer.test/deals", []byte(page))

	require.NotEmpty(t, res.Products)
	assert.Contains(t, res.Products[0].Title, "Pokemon")
	assert.Equal(t, "https://unknown-retailer.test/deal/123", res.Products[0].Link)
	for _, p := range res.Products {
		assert.NotContains(t, p.Title, "blender")
	}
}

func TestExtract_GarbageMarkup(t *testing.T) {
	e := testExtractor(t)

	res := e.Extract("https://shop.example.com/x", []byte("\x00\x01not html at all"))

	assert.Empty(t, res.Products)
	assert.Equal(t, Fingerprint(""), res.Fingerprint, "no products must hash the empty string")
}

func TestExtract_UnknownSiteNoKeywords(t *testing.T) {
	e := testExtractor(t)

	res := e.Extract("https://unknown-retailer.test/", []byte("<html><body><p>nothing relevant here</p></body></html>"))

	assert.Empty(t, res.Products)
	assert.Equal(t, Fingerprint(""), res.Fingerprint)
}
