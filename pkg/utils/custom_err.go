package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")

	ErrMissingAPIKey      = errors.New("generative backend API key is not configured")
	ErrNoBackendAvailable = errors.New("no accessible generative models found")
	ErrBackendTimeout     = errors.New("generative backend timed out")

	ErrEmptyResponse     = errors.New("empty response from generative model")
	ErrUnrecognizedShape = errors.New("unrecognized generative response shape")
	ErrMalformedResponse = errors.New("generative model returned malformed JSON")

	ErrDayNotFound            = errors.New("day not found in itinerary")
	ErrIncompleteRegeneration = errors.New("regeneration result is missing the requested section")
	ErrRegenerationInFlight   = errors.New("a regeneration for this section is already in flight")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	ErrDatabaseError        = errors.New("database error")
)

// MalformedResponseError keeps the offending raw text around so it can be
// logged for diagnosis while the user only sees a generic retry message.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed generative response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

// NoBackendError carries the last probe failure observed while walking the
// candidate model list.
type NoBackendError struct {
	LastErr error
}

func (e *NoBackendError) Error() string {
	if e.LastErr == nil {
		return ErrNoBackendAvailable.Error()
	}
	return fmt.Sprintf("no accessible models found, last error: %v", e.LastErr)
}

func (e *NoBackendError) Unwrap() error {
	return ErrNoBackendAvailable
}
