package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/loyaltycampaign/internal/config"
	"github.com/polkiloo/loyaltycampaign/internal/domain/repository"
	"github.com/polkiloo/loyaltycampaign/internal/storage/csvfile"
	"github.com/polkiloo/loyaltycampaign/internal/storage/postgres"
)

// Module wires the configured data source and its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.LoyaltyRepository { return f.Loyalty() },
		func(f repository.Factory) repository.FlightRepository { return f.Flights() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newFactory reads from PostgreSQL when a database URI is configured and
// from the CSV files otherwise.
func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI != "" {
		p.Logger.Info("using postgres source")
		storage, err := postgres.FromConfig(p.Ctx, p.Config, p.Logger)
		if err != nil {
			return nil, err
		}
		return storage, nil
	}
	p.Logger.Info("using csv source",
		slog.String("loyalty", p.Config.LoyaltyPath),
		slog.String("flights", p.Config.FlightsPath),
	)
	return csvfile.FromConfig(p.Config, p.Logger), nil
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			factory.Close()
			return nil
		},
	})
}
