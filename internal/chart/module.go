package chart

import "go.uber.org/fx"

// Module provides the chart plotter for fx graphs.
var Module = fx.Provide(NewPlotter)
