// Package models defines the client-side data models persisted by the user
// store.
package models

import "time"

// Profile is the persisted user record. Email is the unique key; at most one
// profile exists per email, and saving again for the same email overwrites
// the non-key fields.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// Preferences is an opaque document the screens read and write as a
	// whole; the store only round-trips it.
	Preferences map[string]any `json:"preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
