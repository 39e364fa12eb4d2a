package ingest

import "errors"

// ErrVectorLengthMismatch is returned when a decoded observation frame's
// vector does not match the server's configured input dimension.
var ErrVectorLengthMismatch = errors.New("ingest: observation vector length does not match engine dimension")
