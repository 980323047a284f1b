package router

import "go.uber.org/fx"

// Module registers chart viewer router construction for fx runtime.
var Module = fx.Provide(Setup)
