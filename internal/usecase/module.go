package usecase

import "go.uber.org/fx"

// Module provides the dataset and analysis use cases to the fx container.
var Module = fx.Provide(
	NewDatasetUseCase,
	NewAnalysisUseCase,
)
