package repository

import "errors"

var (
	// ErrNotFound is returned when no record has the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique key is already taken.
	ErrConflict = errors.New("record already exists")
	// ErrStatusChanged is returned when a compare-and-set update sees a different prior status.
	ErrStatusChanged = errors.New("record status changed")
)
