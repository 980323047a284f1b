package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/loyaltycampaign/internal/config"
)

// Module wires the report pipeline, the chart viewer and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewReportFacade,
		newGallery,
		newDisplay,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

func newGallery(cfg *config.Config, logger *slog.Logger) *Gallery {
	return NewGallery("http://"+cfg.ChartAddress, logger)
}

type displayParams struct {
	fx.In

	Config  *config.Config
	Gallery *Gallery
	Logger  *slog.Logger
}

func newDisplay(p displayParams) Display {
	if !p.Config.ShowCharts {
		return NewNopDisplay(p.Logger)
	}
	return p.Gallery
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.ChartAddress,
		Handler: p.Router,
	}
}

type lifecycleParams struct {
	fx.In

	Ctx        context.Context
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Facade     *ReportFacade
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	runCtx, cancel := context.WithCancel(p.Ctx)
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting loyalty campaign report",
				slog.String("campaign_start", p.Config.CampaignStart.Format(config.DateLayout)),
				slog.String("campaign_end", p.Config.CampaignEnd.Format(config.DateLayout)),
			)
			if p.Config.ShowCharts {
				go func() {
					if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						p.Logger.Error("chart viewer terminated", slog.String("error", err.Error()))
						cancel()
					}
				}()
			}
			go func() {
				defer close(done)
				err := p.Facade.Run(runCtx)
				if err != nil {
					p.Logger.Error("report failed", slog.String("error", err.Error()))
				} else {
					p.Logger.Info("report complete")
				}
				_ = p.Shutdowner.Shutdown(fx.ExitCode(exitCode(err)))
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			shutdownCtx := ctx
			stop := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, stop = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer stop()

			select {
			case <-done:
			case <-shutdownCtx.Done():
			}

			if !p.Config.ShowCharts {
				return nil
			}
			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("chart viewer stopped")
			return nil
		},
	})
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
