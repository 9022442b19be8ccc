package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"restockwatch/internal/config"
)

// Fetcher retrieves page markup over HTTP. It is deliberately thin: one GET
// with a fixed overall timeout (set on the client), no retries — the next
// polling round is the retry.
type Fetcher struct {
	httpClient *http.Client
	cfg        *config.MonitorConfig
	logger     zerolog.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client *http.Client, cfg *config.MonitorConfig, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: client,
		cfg:        cfg,
		logger:     logger.With().Str("component", "Fetcher").Logger(),
	}
}

// FetchPage fetches the raw markup of a page. Non-200 responses and oversized
// bodies are errors; the caller treats every error the same way (log, keep
// prior state, continue).
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", pageURL, err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	limit := int64(f.cfg.MaxContentSize)
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", pageURL, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("fetching %s: content exceeds %d bytes", pageURL, limit)
	}

	f.logger.Debug().Str("url", pageURL).Int("bytes", len(body)).Msg("Page fetched")
	return body, nil
}
