package report

import (
	"os"

	"go.uber.org/fx"
)

// Module provides a console reporter bound to stdout.
var Module = fx.Provide(func() *Console { return NewConsole(os.Stdout) })
