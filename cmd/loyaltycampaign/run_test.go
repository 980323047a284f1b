package main

import (
	"context"
	"testing"

	"go.uber.org/fx"
)

func TestRunReturnsShutdownExitCode(t *testing.T) {
	var stopHasDeadline bool
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return shutdowner.Shutdown(fx.ExitCode(3))
				},
				OnStop: func(ctx context.Context) error {
					_, stopHasDeadline = ctx.Deadline()
					return nil
				},
			})
		}),
	)

	if code := run(context.Background(), app); code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if stopHasDeadline {
		t.Fatal("expected stop hooks to receive a context without deadline")
	}
}

func TestRunFailsOnStartError(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error { return context.DeadlineExceeded },
			})
		}),
	)

	if code := run(context.Background(), app); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
