package chart

import "errors"

// Sentinel kinds for render errors.
var (
	// ErrOutputWrite covers both a failed render and an unwritable output path.
	ErrOutputWrite = errors.New("chart output write failed")
)
