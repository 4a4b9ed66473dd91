// Package sessions tracks which profile is currently active on this device,
// plus the session-token rows recorded for it.
package sessions

import (
	"context"
	"time"
)

type Repository interface {
	// SetActive records email as the current user. Existence of a matching
	// profile is deliberately not checked.
	SetActive(ctx context.Context, email string) error

	// Active returns the current user's email, or "" when nobody is active.
	Active(ctx context.Context) (string, error)

	// ClearActive is idempotent; clearing when already clear is fine.
	ClearActive(ctx context.Context) error

	// Create records a session token for email.
	Create(ctx context.Context, token, email string, expiresAt time.Time) error

	// DeleteFor removes all session rows belonging to email.
	DeleteFor(ctx context.Context, email string) error

	// DeleteAll removes the active pointer and every session row.
	DeleteAll(ctx context.Context) error
}
