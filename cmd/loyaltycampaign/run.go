package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts app, waits for the report to finish or a signal, and returns
// the process exit code.
func run(ctx context.Context, app *fx.App) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start application: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
		code = 1
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	// Stop hooks bound themselves with the configured shutdown timeout.
	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop application: %v\n", err)
		return 1
	}
	return code
}
