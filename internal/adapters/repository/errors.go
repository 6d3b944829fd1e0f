package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")
)
