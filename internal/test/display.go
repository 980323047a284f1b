package test

import (
	"context"

	"github.com/polkiloo/loyaltycampaign/internal/chart"
)

// DisplayStub records every batch of charts shown.
type DisplayStub struct {
	Shown [][]chart.Chart
	Err   error
}

// Show records charts and returns the configured error.
func (d *DisplayStub) Show(_ context.Context, charts ...chart.Chart) error {
	d.Shown = append(d.Shown, charts)
	return d.Err
}

// GalleryStub serves fixed charts and counts dismissals.
type GalleryStub struct {
	Items     []chart.Chart
	Dismissed int
}

// Charts returns configured charts.
func (g *GalleryStub) Charts() []chart.Chart { return g.Items }

// Dismiss records a dismissal.
func (g *GalleryStub) Dismiss() { g.Dismissed++ }

// BlockingDisplay ignores cancellation and returns only once Release is closed.
type BlockingDisplay struct {
	Release chan struct{}
}

// Show waits for Release.
func (d *BlockingDisplay) Show(context.Context, ...chart.Chart) error {
	<-d.Release
	return nil
}
