package repository

import (
	"context"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// LoyaltyRepository provides access to loyalty program members.
type LoyaltyRepository interface {
	ListLoyalty(ctx context.Context) ([]model.LoyaltyRecord, error)
}
