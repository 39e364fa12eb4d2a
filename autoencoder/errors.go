package autoencoder

import "errors"

var (
	// ErrInvalidVisibleSize is returned when New is called with nVisible <= 0.
	ErrInvalidVisibleSize = errors.New("autoencoder: n_visible must be > 0")

	// ErrInvalidHiddenSize is returned when the resolved hidden size (explicit
	// or ratio-derived) is <= 0.
	ErrInvalidHiddenSize = errors.New("autoencoder: n_hidden must be > 0")

	// ErrShapeMismatch is returned by SetParams when the supplied Params does
	// not match this AE's existing (n_visible, n_hidden) shape. Restoring
	// parameters never renegotiates shape; it is the caller's responsibility
	// to match it.
	ErrShapeMismatch = errors.New("autoencoder: params shape does not match existing autoencoder shape")

	// ErrInputShapeMismatch is returned by Train/Execute when the
	// observation length does not equal n_visible.
	ErrInputShapeMismatch = errors.New("autoencoder: input length does not match n_visible")
)
