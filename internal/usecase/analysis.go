package usecase

import (
	"log/slog"

	"github.com/polkiloo/loyaltycampaign/internal/config"
	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// AnalysisUseCase runs every analysis against a merged dataset.
type AnalysisUseCase struct {
	period model.CampaignPeriod
	logger *slog.Logger
}

// NewAnalysisUseCase constructs AnalysisUseCase for the configured campaign.
func NewAnalysisUseCase(cfg *config.Config, logger *slog.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{period: cfg.Period(), logger: logger}
}

// Period returns the analysed campaign period.
func (u *AnalysisUseCase) Period() model.CampaignPeriod {
	return u.period
}

// Analyze computes campaign impact, demographics and seasonal flights.
func (u *AnalysisUseCase) Analyze(records []model.MergedRecord) *model.Report {
	report := &model.Report{
		Period:       u.period,
		Impact:       CampaignImpact(records, u.period),
		Demographics: Demographics(records, u.period),
		Flights:      SeasonalFlights(records),
	}
	u.logger.Info("analysis complete",
		slog.Int("gross", report.Impact.Gross),
		slog.Int("net", report.Impact.Net()),
		slog.Int("flights_baseline", report.Flights.Baseline),
		slog.Int("flights_comparison", report.Flights.Comparison),
	)
	return report
}
