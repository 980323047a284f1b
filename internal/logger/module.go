package logger

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides the run logger and installs it as the slog default so
// package-level slog calls carry the same run_id.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(slog.SetDefault),
)
