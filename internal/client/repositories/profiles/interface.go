// Package profiles persists user profile records, keyed by email.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
)

type Repository interface {
	// Save upserts by email: a new email inserts, an existing one overwrites
	// the non-key fields and refreshes updated_at while keeping created_at.
	Save(ctx context.Context, p *models.Profile) error

	// GetByEmail returns the profile for email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)

	// Delete removes the profile for email. Absent rows are not an error.
	Delete(ctx context.Context, email string) error

	// DeleteAll removes every profile.
	DeleteAll(ctx context.Context) error
}
