// Package services defines the business logic for the quote feed and the
// per-user saved-quote collection. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes should be performed at the
// handler layer.
package services

import "errors"

var (
	// ErrEmptyText is returned when a toggle request carries no quote text
	// after normalization. Text is the natural key for save/unsave matching,
	// so a blank value cannot identify anything.
	ErrEmptyText = errors.New("quote text is empty")

	// ErrTextTooLong is returned when a toggle request exceeds the maximum
	// configured text length.
	ErrTextTooLong = errors.New("quote text too long")

	// ErrEmptyUser is returned when no user identity reached the service.
	// Handlers normally guarantee a fallback identity, so seeing this error
	// indicates a wiring bug rather than bad client input.
	ErrEmptyUser = errors.New("user id is empty")
)
