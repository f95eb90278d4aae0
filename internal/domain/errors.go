package domain

import "errors"

// Domain errors represent error conditions in the sbdrain domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrMalformedConnString is returned when a connection string has no
	// Endpoint= segment.
	ErrMalformedConnString = errors.New("sbdrain: connection string missing Endpoint segment")

	// ErrMissingNamespace is returned when neither a connection string nor a
	// namespace identifier is configured.
	ErrMissingNamespace = errors.New("sbdrain: namespace not configured")

	// ErrMissingTarget is returned when the topic or subscription name is empty.
	ErrMissingTarget = errors.New("sbdrain: topic and subscription are required")

	// ErrInvalidPolicy is returned when drain policy validation fails.
	ErrInvalidPolicy = errors.New("sbdrain: invalid drain policy")

	// ErrAuthUnavailable is returned when no permitted credential mechanism
	// can produce a usable credential.
	ErrAuthUnavailable = errors.New("sbdrain: no usable credential")

	// ErrPhaseTransition is returned on an invalid drain phase transition.
	ErrPhaseTransition = errors.New("sbdrain: invalid phase transition")
)
