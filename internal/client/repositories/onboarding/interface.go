// Package onboarding persists per-profile onboarding completion flags.
// Flags are scoped to an (email, step) pair; the default step is "main".
package onboarding

import "context"

// DefaultStep is the step recorded by the standard first-run flow.
const DefaultStep = "main"

type Repository interface {
	// SetCompleted marks step done for email. Idempotent.
	SetCompleted(ctx context.Context, email, step string) error

	// IsCompleted reports whether step is done for email.
	IsCompleted(ctx context.Context, email, step string) (bool, error)

	// ClearFor removes all onboarding flags for email.
	ClearFor(ctx context.Context, email string) error

	// DeleteAll removes every flag.
	DeleteAll(ctx context.Context) error
}
