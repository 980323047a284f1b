package app

import (
	"context"
	"fmt"

	"github.com/polkiloo/loyaltycampaign/internal/chart"
	"github.com/polkiloo/loyaltycampaign/internal/report"
	"github.com/polkiloo/loyaltycampaign/internal/usecase"
)

// ReportFacade runs the report pipeline: load, analyze, print and plot.
type ReportFacade struct {
	dataset  *usecase.DatasetUseCase
	analysis *usecase.AnalysisUseCase
	console  *report.Console
	plotter  *chart.Plotter
	display  Display
}

func NewReportFacade(dataset *usecase.DatasetUseCase, analysis *usecase.AnalysisUseCase, console *report.Console, plotter *chart.Plotter, display Display) *ReportFacade {
	return &ReportFacade{dataset: dataset, analysis: analysis, console: console, plotter: plotter, display: display}
}

// Run executes the pipeline once. Each section is printed before its
// charts are shown.
func (f *ReportFacade) Run(ctx context.Context) error {
	records, err := f.dataset.Load(ctx)
	if err != nil {
		return err
	}
	result := f.analysis.Analyze(records)

	if err := f.console.CampaignImpact(result.Impact); err != nil {
		return err
	}
	impactChart, err := f.plotter.CampaignImpact(result.Impact)
	if err != nil {
		return err
	}
	if err := f.display.Show(ctx, impactChart); err != nil {
		return fmt.Errorf("show campaign impact: %w", err)
	}

	if err := f.console.Demographics(result.Demographics); err != nil {
		return err
	}
	demoCharts, err := f.plotter.Demographics(result.Demographics)
	if err != nil {
		return err
	}
	if err := f.display.Show(ctx, demoCharts...); err != nil {
		return fmt.Errorf("show demographics: %w", err)
	}

	if err := f.console.SeasonalFlights(result.Flights); err != nil {
		return err
	}
	flightsChart, err := f.plotter.SeasonalFlights(result.Flights)
	if err != nil {
		return err
	}
	if err := f.display.Show(ctx, flightsChart); err != nil {
		return fmt.Errorf("show seasonal flights: %w", err)
	}
	return nil
}
