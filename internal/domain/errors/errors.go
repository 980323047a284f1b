package errors

import "errors"

var (
	ErrMissingColumn   = errors.New("missing column")
	ErrMalformedRecord = errors.New("malformed record")
	ErrEmptyDataset    = errors.New("empty dataset")
	ErrInvalidPeriod   = errors.New("invalid campaign period")
	ErrChartNotFound   = errors.New("chart not found")
)
