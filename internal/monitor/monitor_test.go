package monitor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restockwatch/internal/config"
	"restockwatch/internal/detector"
	"restockwatch/internal/extractor"
	"restockwatch/internal/notifier"
)

func productPage(titles ...string) string {
	page := "<html><body>"
	for _, title := range titles {
		page += `<div class="product"><span class="name">` + title + `</span><span class="price">$24.99</span></div>`
	}
	return page + "</body></html>"
}

func testService(t *testing.T, client *http.Client, webhookURL string) (*MonitoringService, *detector.StateStore) {
	t.Helper()

	monCfg := config.NewDefaultMonitorConfig()

	extCfg := config.NewDefaultExtractorConfig()
	extCfg.ExtraSiteRules = []config.SiteRuleConfig{{
		Name:               "local",
		URLSubstring:       "127.0.0.1",
		ContainerSelectors: []string{".product"},
		TitleSelectors:     []string{".name"},
		PriceSelectors:     []string{".price"},
	}}

	store := detector.NewStateStore()
	dn := notifier.NewDiscordNotifier(zerolog.Nop(), client)
	helper := notifier.NewNotificationHelper(dn, config.NewDefaultNotificationConfig(), webhookURL, zerolog.Nop())

	service := NewMonitoringService(
		NewFetcher(client, &monCfg, zerolog.Nop()),
		extractor.New(extCfg, zerolog.Nop()),
		detector.New(store, zerolog.Nop()),
		helper,
		zerolog.Nop(),
	)
	return service, store
}

func TestCheckPage_FailureDoesNotTouchStateOrOtherPages(t *testing.T) {
	var pageAFails atomic.Bool
	var pageBChanged atomic.Bool

	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			if pageAFails.Load() {
				http.Error(w, "upstream broke", http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(productPage("Booster Bundle Pack")))
		case "/b":
			if pageBChanged.Load() {
				_, _ = w.Write([]byte(productPage("Elite Trainer Box", "Charizard ex Premium Box")))
				return
			}
			_, _ = w.Write([]byte(productPage("Elite Trainer Box")))
		default:
			http.NotFound(w, r)
		}
	}))
	defer pages.Close()

	var alerts atomic.Int32
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alerts.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer webhook.Close()

	service, store := testService(t, pages.Client(), webhook.URL)
	ctx := context.Background()
	pageA := pages.URL + "/a"
	pageB := pages.URL + "/b"

	// First pass: baselines, no alerts.
	service.CheckPage(ctx, pageA)
	service.CheckPage(ctx, pageB)
	require.Zero(t, alerts.Load(), "first scans never alert")
	require.NotNil(t, store.Get(pageA))

	baselineA := store.Get(pageA).Fingerprint

	// Second pass: page A starts failing, page B gains a product.
	pageAFails.Store(true)
	pageBChanged.Store(true)
	service.CheckPage(ctx, pageA)
	service.CheckPage(ctx, pageB)

	assert.Equal(t, int32(1), alerts.Load(), "page B's change must be alerted despite page A failing")
	require.NotNil(t, store.Get(pageA), "a failed fetch must not clear prior state")
	assert.Equal(t, baselineA, store.Get(pageA).Fingerprint, "a failed fetch must not advance the baseline")

	// Page A recovers with identical content: no alert, baseline matches.
	pageAFails.Store(false)
	service.CheckPage(ctx, pageA)
	assert.Equal(t, int32(1), alerts.Load())
}

func TestCheckPage_ChangedWithNoNewTitlesDoesNotAlert(t *testing.T) {
	var priceDropped atomic.Bool
	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		price := "$39.99"
		if priceDropped.Load() {
			price = "$29.99"
		}
		_, _ = w.Write([]byte(`<html><body><div class="product"><span class="name">Charizard ex Premium Box</span><span class="price">` + price + `</span></div></body></html>`))
	}))
	defer pages.Close()

	var alerts atomic.Int32
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alerts.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer webhook.Close()

	service, store := testService(t, pages.Client(), webhook.URL)
	ctx := context.Background()
	pageURL := pages.URL + "/tcg"

	service.CheckPage(ctx, pageURL)
	first := store.Get(pageURL).Fingerprint

	priceDropped.Store(true)
	service.CheckPage(ctx, pageURL)

	// Title-only identity: the fingerprint moved but no title is new, so the
	// cycle is Changed yet alert-free.
	assert.NotEqual(t, first, store.Get(pageURL).Fingerprint)
	assert.Zero(t, alerts.Load())
}

func TestScheduler_InitialPassChecksEveryPageOnce(t *testing.T) {
	var hitsA, hitsB atomic.Int32
	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			hitsA.Add(1)
		case "/b":
			hitsB.Add(1)
		}
		_, _ = w.Write([]byte(productPage("Elite Trainer Box")))
	}))
	defer pages.Close()

	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer webhook.Close()

	service, _ := testService(t, pages.Client(), webhook.URL)

	cfg := config.NewDefaultMonitorConfig()
	cfg.PageURLs = []string{pages.URL + "/a", pages.URL + "/b"}
	cfg.InitialPageDelaySeconds = 0
	cfg.PollIntervalSeconds = 60 // never reached within the test window

	scheduler := NewScheduler(&cfg, service, nil, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := scheduler.Run(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), hitsA.Load())
	assert.Equal(t, int32(1), hitsB.Load())
}

func TestFetcher_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	cfg := config.NewDefaultMonitorConfig()
	f := NewFetcher(server.Client(), &cfg, zerolog.Nop())

	_, err := f.FetchPage(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "410")
}

func TestFetcher_ContentSizeCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer server.Close()

	cfg := config.NewDefaultMonitorConfig()
	cfg.MaxContentSize = 1024
	f := NewFetcher(server.Client(), &cfg, zerolog.Nop())

	_, err := f.FetchPage(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}
