// Package store implements the user-state contract shared by every screen of
// the app: profile records keyed by email, the active-user pointer, the
// per-profile onboarding flag, per-user favorites and order history, and the
// three destructive reset operations.
//
// The contract is deliberately forgiving: query operations never surface
// storage errors to the caller. A broken substrate reads as "no profile",
// "not onboarded", "no favorites" — the screens route to onboarding instead
// of showing a technical failure. Diagnostics go to the injected logger.
//
// Two implementations exist: KV, which lays JSON documents over a pluggable
// key-value substrate, and SQLite, which keeps the same state in an embedded
// database behind per-entity repositories. Both satisfy Store and are
// interchangeable at startup.
package store

import (
	"context"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
)

// Store is the device-local user state. Implementations are fully
// initialized by their constructors; no operation requires a separate
// "wait until ready" step.
type Store interface {
	// SaveProfile upserts by p.Email and returns the stored record with
	// refreshed timestamps. The saved email becomes the active user: this
	// is a documented part of the contract, not a side effect. Fails with
	// common.ErrorEmailRequired when the email is empty.
	SaveProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)

	// Profile returns the active user's record, or nil when there is no
	// active user, no matching record, or the substrate is unreadable.
	Profile(ctx context.Context) *models.Profile

	// ProfileByEmail returns the record for an arbitrary email, or nil.
	// Login screens use it to decide whether an account exists.
	ProfileByEmail(ctx context.Context, email string) *models.Profile

	// SetActiveUser records email as current without checking that a
	// matching profile exists; lookups through a dangling pointer simply
	// return nil.
	SetActiveUser(ctx context.Context, email string) error

	// ActiveUser returns the current email, or "" when nobody is active.
	ActiveUser(ctx context.Context) string

	// ClearActiveUser is idempotent.
	ClearActiveUser(ctx context.Context) error

	// SetOnboardingCompleted marks onboarding done for the active user.
	// A no-op when there is no active user or no profile for it.
	SetOnboardingCompleted(ctx context.Context) error

	// IsOnboardingCompleted is false before SetOnboardingCompleted and on
	// any lookup failure.
	IsOnboardingCompleted(ctx context.Context) bool

	// ClearOnboardingStatus removes only the active user's onboarding flag;
	// profile and favorites survive.
	ClearOnboardingStatus(ctx context.Context) error

	// AddToFavorites / RemoveFromFavorites mutate the active user's set and
	// are no-ops without an active user.
	AddToFavorites(ctx context.Context, dishID string) error
	RemoveFromFavorites(ctx context.Context, dishID string) error

	// IsFavorite is false without an active user.
	IsFavorite(ctx context.Context, dishID string) bool

	// Favorites returns the active user's set in insertion order.
	Favorites(ctx context.Context) []string

	// SaveOrder appends an order to the active user's history and returns
	// it. Fails with common.ErrorNoActiveUser when nobody is logged in.
	SaveOrder(ctx context.Context, items []models.OrderItem, total float64) (*models.Order, error)

	// Orders returns the active user's history, newest first.
	Orders(ctx context.Context) []models.Order

	// ClearUserData is the logout operation: it clears the session pointer
	// and the onboarding flag only. Profile, favorites and orders survive,
	// so the user can log back in and resume.
	ClearUserData(ctx context.Context) error

	// RemoveAllUserData deletes the active user entirely — profile,
	// favorites, orders, sessions. Other users' records survive.
	RemoveAllUserData(ctx context.Context) error

	// Reset wipes the entire substrate: all users, all data.
	Reset(ctx context.Context) error

	// Close releases the underlying storage handle.
	Close() error
}
