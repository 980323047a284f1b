package handlers

import "github.com/polkiloo/loyaltycampaign/internal/chart"

// ChartGallery exposes the charts currently on display.
type ChartGallery interface {
	Charts() []chart.Chart
	Dismiss()
}
