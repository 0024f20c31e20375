package trivia

import "errors"

// Sentinel errors classified by the HTTP boundary. Anything else coming out
// of the service collapses into a generic unprocessable response there.
var (
	// ErrValidation marks missing or empty required input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced id that does not exist.
	ErrNotFound = errors.New("resource not found")
)
