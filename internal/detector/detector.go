package detector

import (
	"time"

	"github.com/rs/zerolog"

	"restockwatch/internal/extractor"
	"restockwatch/internal/models"
)

// Detector classifies each successful scrape of a page as initial, unchanged
// or changed, and owns the state transition: it reads and then overwrites the
// page snapshot as a side effect. Callers must invoke Evaluate exactly once
// per successful scrape; failed scrapes never reach it, which keeps the
// baseline pinned to the last successful scrape.
type Detector struct {
	store  *StateStore
	logger zerolog.Logger
}

// New creates a Detector around an explicit state store.
func New(store *StateStore, logger zerolog.Logger) *Detector {
	return &Detector{
		store:  store,
		logger: logger.With().Str("component", "ChangeDetector").Logger(),
	}
}

// Evaluate compares the fresh extraction against the stored snapshot for the
// page and replaces the snapshot wholesale. For a Changed outcome the
// returned snapshot is the pre-overwrite previous state, which the caller
// feeds to the diff engine; otherwise it is nil.
func (d *Detector) Evaluate(pageURL string, res extractor.ExtractionResult) (models.ChangeOutcome, *models.PageSnapshot) {
	previous := d.store.Get(pageURL)

	d.store.Put(&models.PageSnapshot{
		URL:             pageURL,
		Fingerprint:     res.Fingerprint,
		FingerprintText: res.FingerprintText,
		Products:        res.Products,
		FetchedAt:       time.Now(),
	})

	switch {
	case previous == nil:
		d.logger.Info().Str("url", pageURL).Int("products", len(res.Products)).Msg("First scrape, baseline stored")
		return models.OutcomeInitial, nil
	case previous.Fingerprint == res.Fingerprint:
		return models.OutcomeUnchanged, nil
	default:
		d.logger.Info().
			Str("url", pageURL).
			Str("old_fingerprint", previous.Fingerprint).
			Str("new_fingerprint", res.Fingerprint).
			Msg("Page content changed")
		return models.OutcomeChanged, previous
	}
}
