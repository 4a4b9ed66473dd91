// Package orders persists each user's order history.
package orders

import (
	"context"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
)

type Repository interface {
	// Save inserts a new order row.
	Save(ctx context.Context, o *models.Order) error

	// ListFor returns email's orders, newest first.
	ListFor(ctx context.Context, email string) ([]models.Order, error)

	// DeleteFor removes all orders belonging to email.
	DeleteFor(ctx context.Context, email string) error

	// DeleteAll removes every order.
	DeleteAll(ctx context.Context) error
}
