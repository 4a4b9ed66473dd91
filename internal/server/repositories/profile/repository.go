// Package profile stores the single mirrored profile document. The server
// keeps at most one row; saving replaces whatever was there before.
package profile

import "context"

type Repository interface {
	// Replace deletes any stored document and inserts data.
	Replace(ctx context.Context, data []byte) error
	// Get returns the stored document, or nil when there is none.
	Get(ctx context.Context) ([]byte, error)
	DeleteAll(ctx context.Context) error
}
