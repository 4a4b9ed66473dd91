package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
	"github.com/dmitrijs2005/trattoria/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, o *models.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	query := `INSERT INTO order_history (id, email, items, total, status, placed_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		o.ID, o.Email, string(items), o.Total, o.Status, o.PlacedAt)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListFor(ctx context.Context, email string) ([]models.Order, error) {
	query := `SELECT id, email, items, total, status, placed_at
		FROM order_history WHERE email = ? ORDER BY placed_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders[%s]: %w", email, err)
	}
	defer rows.Close()

	result := []models.Order{}
	for rows.Next() {
		var o models.Order
		var items string
		if err := rows.Scan(&o.ID, &o.Email, &items, &o.Total, &o.Status, &o.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteFor(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_history WHERE email = ?`, email); err != nil {
		return fmt.Errorf("failed to delete orders[%s]: %w", email, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM order_history`); err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	return nil
}
