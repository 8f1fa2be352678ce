package services

import "errors"

// Sentinel errors returned by the services. They are wrapped with context
// via fmt.Errorf and %w, so handlers must match them with errors.Is.
var (
	// ErrUsernameTaken and ErrEmailTaken signal uniqueness violations at
	// registration time.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password; login must not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by profile lookups.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPercent rejects negative stop-order percentages.
	ErrInvalidPercent = errors.New("percent must be a non-negative number")

	// ErrQuoteUnavailable means stop-order creation could not price the
	// ticker, whatever the underlying provider failure was.
	ErrQuoteUnavailable = errors.New("could not fetch a quote for ticker")
)
