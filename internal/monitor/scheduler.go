package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"restockwatch/internal/config"
	"restockwatch/internal/rslimiter"
)

// Scheduler drives the polling loop: one sequential pass over all monitored
// pages, then a fixed-delay repeat, forever. Exactly one page is in flight at
// a time, so the detector's state store needs no locking. Cancellation is
// observed between suspension points (inter-page pacing, inter-round waits).
type Scheduler struct {
	cfg     *config.MonitorConfig
	service *MonitoringService
	sampler *rslimiter.UsageSampler
	logger  zerolog.Logger
}

// NewScheduler creates a Scheduler.
func NewScheduler(cfg *config.MonitorConfig, service *MonitoringService, sampler *rslimiter.UsageSampler, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		service: service,
		sampler: sampler,
		logger:  logger.With().Str("component", "Scheduler").Logger(),
	}
}

// Run blocks until ctx is cancelled. The initial pass uses the slower
// inter-page pacing; every later round uses the steady pacing.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info().
		Int("pages", len(s.cfg.PageURLs)).
		Dur("poll_interval", s.cfg.PollInterval()).
		Msg("Starting polling loop")

	s.runPass(ctx, s.cfg.InitialPageDelay())

	round := 1
	for {
		if err := sleepCtx(ctx, s.cfg.PollInterval()); err != nil {
			s.logger.Info().Msg("Polling loop stopped")
			return err
		}
		s.logger.Debug().Int("round", round).Msg("Starting polling round")
		s.runPass(ctx, s.cfg.PageDelay())
		round++
	}
}

// runPass scrapes every monitored page once, pacing between pages. A failure
// (or panic) on one page must not prevent the remaining pages from being
// checked.
func (s *Scheduler) runPass(ctx context.Context, pageDelay time.Duration) {
	for i, pageURL := range s.cfg.PageURLs {
		if ctx.Err() != nil {
			return
		}
		s.checkPageSafely(ctx, pageURL)
		if i < len(s.cfg.PageURLs)-1 {
			if err := sleepCtx(ctx, pageDelay); err != nil {
				return
			}
		}
	}
	if s.sampler != nil {
		s.sampler.Sample()
	}
}

func (s *Scheduler) checkPageSafely(ctx context.Context, pageURL string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("url", pageURL).Msg("Recovered from panic while checking page")
		}
	}()
	s.service.CheckPage(ctx, pageURL)
}

// sleepCtx waits for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
