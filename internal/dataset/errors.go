package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	// ErrDataUnavailable covers a missing, unreadable, or malformed source table.
	ErrDataUnavailable = errors.New("source data unavailable")
)
