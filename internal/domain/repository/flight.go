package repository

import (
	"context"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// FlightRepository provides access to monthly flight activity.
type FlightRepository interface {
	ListFlightActivity(ctx context.Context) ([]model.FlightActivity, error)
}
