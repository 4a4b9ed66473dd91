// Package onboarding stores the mirrored onboarding flag as a single row
// with id 1.
package onboarding

import "context"

type Repository interface {
	// Set replaces the stored flag.
	Set(ctx context.Context, completed bool) error
	// Get reports the stored flag; false when no row exists.
	Get(ctx context.Context) (bool, error)
	DeleteAll(ctx context.Context) error
}
