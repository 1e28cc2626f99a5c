package pipeline

import "errors"

var (
	// ErrNoStrategyProcessor is returned when neither the active strategy
	// nor "none" registered the requested processor.
	ErrNoStrategyProcessor = errors.New("pipeline: no processor registered for strategy")

	// ErrProcessorType is returned when a registered processor does not
	// match the types it is applied with.
	ErrProcessorType = errors.New("pipeline: processor type mismatch")
)
