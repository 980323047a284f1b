package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/loyaltycampaign/internal/app"
	"github.com/polkiloo/loyaltycampaign/internal/chart"
	"github.com/polkiloo/loyaltycampaign/internal/config"
	"github.com/polkiloo/loyaltycampaign/internal/logger"
	"github.com/polkiloo/loyaltycampaign/internal/report"
	"github.com/polkiloo/loyaltycampaign/internal/server/http/handlers"
	"github.com/polkiloo/loyaltycampaign/internal/server/http/router"
	"github.com/polkiloo/loyaltycampaign/internal/storage"
	"github.com/polkiloo/loyaltycampaign/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		usecase.Module,
		chart.Module,
		report.Module,
		fx.Provide(func(g *app.Gallery) handlers.ChartGallery { return g }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
