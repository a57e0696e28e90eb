package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matches no record.
	// Absence is always reported through this error, never as a nil entity.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is wrapped by services when a command fails validation.
	ErrValidation = errors.New("validation failed")
)
