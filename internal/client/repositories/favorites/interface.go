// Package favorites persists each user's set of favorite dish ids.
// Set semantics: adding twice keeps one row; listing preserves insertion
// order.
package favorites

import "context"

type Repository interface {
	// Add inserts dishID into email's set. Already-present ids are ignored.
	Add(ctx context.Context, email, dishID string) error

	// Remove deletes dishID from email's set. Absent ids are not an error.
	Remove(ctx context.Context, email, dishID string) error

	// Contains reports membership.
	Contains(ctx context.Context, email, dishID string) (bool, error)

	// List returns email's favorites in insertion order.
	List(ctx context.Context, email string) ([]string, error)

	// DeleteFor removes the whole set for email.
	DeleteFor(ctx context.Context, email string) error

	// DeleteAll removes every user's set.
	DeleteAll(ctx context.Context) error
}
