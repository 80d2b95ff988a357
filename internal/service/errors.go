package service

import "errors"

var (
	// ErrInvalidInput marks a missing or malformed building/room.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable marks a schedule store that could not be queried.
	ErrStoreUnavailable = errors.New("schedule store unavailable")
)
