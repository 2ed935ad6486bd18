// Package application contains use-case orchestration services.
package application

import "errors"

// Sentinel errors surfaced by the application services.
var (
	// ErrUnauthorized covers every authentication failure: wrong credentials,
	// missing token, bad signature, malformed token, or expired token. All
	// cases collapse into one error so responses leak nothing about which
	// check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates a contact submission arrived before the
	// sender's throttle window elapsed.
	ErrRateLimited = errors.New("rate limited")
)
