// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Contract preconditions.
	ErrorEmailRequired = errors.New("email is required")
	ErrorNoActiveUser  = errors.New("no active user")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Remote mirror errors.
	ErrorServerUnavailable = errors.New("server unavailable")
)
