package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/loyaltycampaign/internal/chart"
)

// Display presents charts and blocks until the viewer is done with them.
type Display interface {
	Show(ctx context.Context, charts ...chart.Chart) error
}

// Gallery holds the charts served by the viewer. Show blocks until the
// charts are dismissed or ctx is cancelled.
type Gallery struct {
	mu        sync.Mutex
	charts    []chart.Chart
	dismissed chan struct{}
	url       string
	logger    *slog.Logger
}

// NewGallery constructs an empty gallery reachable at url.
func NewGallery(url string, logger *slog.Logger) *Gallery {
	return &Gallery{url: url, logger: logger}
}

// Show publishes charts and waits for their dismissal.
func (g *Gallery) Show(ctx context.Context, charts ...chart.Chart) error {
	if len(charts) == 0 {
		return nil
	}

	done := make(chan struct{})
	g.mu.Lock()
	g.charts = charts
	g.dismissed = done
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.charts = nil
		g.dismissed = nil
		g.mu.Unlock()
	}()

	names := make([]string, len(charts))
	for i, c := range charts {
		names[i] = c.Name
	}
	g.logger.Info("charts ready, dismiss them to continue",
		slog.String("url", g.url),
		slog.Any("charts", names),
	)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Charts returns the charts currently on display.
func (g *Gallery) Charts() []chart.Chart {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.charts
}

// Dismiss releases the pending Show call, if any.
func (g *Gallery) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dismissed != nil {
		close(g.dismissed)
		g.dismissed = nil
	}
}

// NopDisplay discards charts. Used when the viewer is disabled.
type NopDisplay struct {
	logger *slog.Logger
}

// NewNopDisplay constructs NopDisplay.
func NewNopDisplay(logger *slog.Logger) *NopDisplay {
	return &NopDisplay{logger: logger}
}

// Show logs the skipped charts and returns immediately.
func (d *NopDisplay) Show(_ context.Context, charts ...chart.Chart) error {
	for _, c := range charts {
		d.logger.Info("chart rendered, viewer disabled", slog.String("chart", c.Name), slog.Int("bytes", len(c.SVG)))
	}
	return nil
}
