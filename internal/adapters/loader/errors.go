package loader

import "errors"

// Sentinel kinds for roster loading errors.
var (
	ErrLoadRoster = errors.New("load roster failed")
)
