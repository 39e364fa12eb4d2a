package kitnet

import "errors"

var (
	// ErrInvalidDimension is returned by New when n <= 0.
	ErrInvalidDimension = errors.New("kitnet: n must be > 0")

	// ErrNoFeatureMap is returned by Execute (directly, or via Process once
	// n_trained exceeds the grace total) when no partition exists yet —
	// either FM-training has not reached FM_grace, or the engine was
	// constructed without a preset partition and has not been trained at
	// all.
	ErrNoFeatureMap = errors.New("kitnet: execute called before a feature partition exists")

	// ErrInputShapeMismatch is returned by Process/Train/Execute when the
	// observation length does not equal n.
	ErrInputShapeMismatch = errors.New("kitnet: input length does not match configured dimension")

	// ErrParamsShapeMismatch is returned by SetParams when the supplied
	// Params does not match this engine's existing ensemble/output shapes.
	ErrParamsShapeMismatch = errors.New("kitnet: params shape does not match existing engine shape")
)
