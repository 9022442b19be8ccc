package monitor

import (
	"context"

	"github.com/rs/zerolog"

	"restockwatch/internal/detector"
	"restockwatch/internal/differ"
	"restockwatch/internal/extractor"
	"restockwatch/internal/models"
	"restockwatch/internal/notifier"
)

// MonitoringService runs the per-page pipeline: fetch → extract → evaluate →
// (on change) diff → notify. All failures are handled at the page level; a
// fetch error for one page never stops the pass and never advances that
// page's baseline.
type MonitoringService struct {
	fetcher       *Fetcher
	extractor     *extractor.Extractor
	detector      *detector.Detector
	listingDiffer *differ.ListingDiffer
	notifHelper   *notifier.NotificationHelper
	logger        zerolog.Logger
}

// NewMonitoringService wires the pipeline.
func NewMonitoringService(
	fetcher *Fetcher,
	ext *extractor.Extractor,
	det *detector.Detector,
	notifHelper *notifier.NotificationHelper,
	logger zerolog.Logger,
) *MonitoringService {
	return &MonitoringService{
		fetcher:       fetcher,
		extractor:     ext,
		detector:      det,
		listingDiffer: differ.NewListingDiffer(),
		notifHelper:   notifHelper,
		logger:        logger.With().Str("component", "MonitoringService").Logger(),
	}
}

// CheckPage performs one scrape cycle for one page.
func (ms *MonitoringService) CheckPage(ctx context.Context, pageURL string) {
	body, err := ms.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		// Prior state stays untouched; the next round is the retry.
		ms.logger.Warn().Err(err).Str("url", pageURL).Msg("Fetch failed, keeping previous page state")
		return
	}

	res := ms.extractor.Extract(pageURL, body)
	outcome, previous := ms.detector.Evaluate(pageURL, res)

	switch outcome {
	case models.OutcomeInitial:
		ms.logger.Info().Str("url", pageURL).Int("products", len(res.Products)).Msg("Baseline established, no notification")
	case models.OutcomeUnchanged:
		ms.logger.Debug().Str("url", pageURL).Msg("No change detected")
	case models.OutcomeChanged:
		ms.handleChange(ctx, pageURL, res, previous)
	}
}

func (ms *MonitoringService) handleChange(ctx context.Context, pageURL string, res extractor.ExtractionResult, previous *models.PageSnapshot) {
	listingDiff := ms.listingDiffer.Diff(previous.FingerprintText, res.FingerprintText)
	newProducts := differ.NewProducts(res.Products, previous.Products)

	ms.logger.Info().
		Str("url", pageURL).
		Int("new_products", len(newProducts)).
		Int("lines_added", listingDiff.LinesAdded).
		Int("lines_removed", listingDiff.LinesRemoved).
		Msg("Change detected")

	if len(newProducts) == 0 {
		// Price or availability moved on already-known titles. Title is the
		// sole identity, so nothing is "new" and no alert goes out.
		ms.logger.Info().Str("url", pageURL).Str("diff", listingDiff.Summary).Msg("Changed fingerprint but no new titles, skipping notification")
		return
	}

	ms.notifHelper.NotifyNewProducts(ctx, pageURL, newProducts, listingDiff.Summary)
}
