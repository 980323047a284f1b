package csvfile

import (
	"log/slog"

	"github.com/polkiloo/loyaltycampaign/internal/config"
)

// FromConfig builds file storage for the configured input paths.
func FromConfig(cfg *config.Config, logger *slog.Logger) *Storage {
	return New(cfg.LoyaltyPath, cfg.FlightsPath, logger)
}
