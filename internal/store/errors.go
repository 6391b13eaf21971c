package store

import "errors"

// Sentinel errors returned by store implementations. Services translate
// these into domain errors at the boundary.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)
