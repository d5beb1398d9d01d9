package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrGatherFailed = errors.New("metrics gather failed")
	ErrWriteFailed  = errors.New("metrics textfile write failed")
)
