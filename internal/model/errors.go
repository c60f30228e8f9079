package model

import "errors"

// Common errors used across the application
var (
	// Interactive session errors
	ErrSessionClosed = errors.New("interactive session closed")

	// Configuration errors
	ErrInvalidSamples = errors.New("sample count must be positive")
	ErrInvalidWorkers = errors.New("worker count cannot be negative")
)
