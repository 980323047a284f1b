package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/loyaltycampaign/internal/domain/errors"
	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
	"github.com/polkiloo/loyaltycampaign/internal/domain/repository"
)

// DatasetUseCase loads both input tables and joins them.
type DatasetUseCase struct {
	loyalty repository.LoyaltyRepository
	flights repository.FlightRepository
	logger  *slog.Logger
}

// NewDatasetUseCase constructs DatasetUseCase.
func NewDatasetUseCase(l repository.LoyaltyRepository, f repository.FlightRepository, logger *slog.Logger) *DatasetUseCase {
	return &DatasetUseCase{loyalty: l, flights: f, logger: logger}
}

// Load reads members and flight activity and returns their inner join.
func (u *DatasetUseCase) Load(ctx context.Context) ([]model.MergedRecord, error) {
	members, err := u.loyalty.ListLoyalty(ctx)
	if err != nil {
		return nil, fmt.Errorf("load loyalty history: %w", err)
	}

	activity, err := u.flights.ListFlightActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flight activity: %w", err)
	}

	merged := Merge(members, activity)
	u.logger.Info("dataset merged",
		slog.Int("members", len(members)),
		slog.Int("activity", len(activity)),
		slog.Int("merged", len(merged)),
	)
	if len(merged) == 0 {
		return nil, fmt.Errorf("%w: no flight activity matches a loyalty member", domainErrors.ErrEmptyDataset)
	}
	return merged, nil
}

// Merge inner-joins members and activity on the loyalty number. Rows without
// a partner on either side are dropped; output follows activity order.
func Merge(members []model.LoyaltyRecord, activity []model.FlightActivity) []model.MergedRecord {
	byNumber := make(map[int64][]model.LoyaltyRecord, len(members))
	for _, m := range members {
		byNumber[m.LoyaltyNumber] = append(byNumber[m.LoyaltyNumber], m)
	}

	merged := make([]model.MergedRecord, 0, len(activity))
	for _, a := range activity {
		for _, m := range byNumber[a.LoyaltyNumber] {
			merged = append(merged, model.MergedRecord{
				LoyaltyRecord: m,
				Year:          a.Year,
				Month:         a.Month,
				TotalFlights:  a.TotalFlights,
			})
		}
	}
	return merged
}
