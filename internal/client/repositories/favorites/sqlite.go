package favorites

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/trattoria/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, email, dishID string) error {
	query := `INSERT OR IGNORE INTO user_favorites (email, dish_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, email, dishID); err != nil {
		return fmt.Errorf("failed to add favorite[%s/%s]: %w", email, dishID, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, email, dishID string) error {
	query := `DELETE FROM user_favorites WHERE email = ? AND dish_id = ?`
	if _, err := r.db.ExecContext(ctx, query, email, dishID); err != nil {
		return fmt.Errorf("failed to remove favorite[%s/%s]: %w", email, dishID, err)
	}
	return nil
}

func (r *SQLiteRepository) Contains(ctx context.Context, email, dishID string) (bool, error) {
	query := `SELECT COUNT(*) FROM user_favorites WHERE email = ? AND dish_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, email, dishID).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check favorite[%s/%s]: %w", email, dishID, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) List(ctx context.Context, email string) ([]string, error) {
	// rowid keeps insertion order even when added_at collides within a second.
	query := `SELECT dish_id FROM user_favorites WHERE email = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites[%s]: %w", email, err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorite rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteFor(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_favorites WHERE email = ?`, email); err != nil {
		return fmt.Errorf("failed to delete favorites[%s]: %w", email, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_favorites`); err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}
	return nil
}
