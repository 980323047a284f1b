package postgres

import (
	"context"
	"log/slog"

	"github.com/polkiloo/loyaltycampaign/internal/config"
)

// FromConfig connects to the configured database.
func FromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	return New(ctx, cfg.DatabaseURI, logger)
}
