package onboarding

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

func (r *SQLiteRepository) SetCompleted(ctx context.Context, email, step string) error {
	query := `INSERT INTO onboarding_status (email, step, completed, completed_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(email, step) DO UPDATE SET completed = 1, completed_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, email, step); err != nil {
		return fmt.Errorf("failed to set onboarding[%s/%s]: %w", email, step, err)
	}
	return nil
}

func (r *SQLiteRepository) IsCompleted(ctx context.Context, email, step string) (bool, error) {
	query := `SELECT COUNT(*) FROM onboarding_status
		WHERE email = ? AND step = ? AND completed = 1`
	var n int
	if err := r.db.QueryRowContext(ctx, query, email, step).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check onboarding[%s/%s]: %w", email, step, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) ClearFor(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM onboarding_status WHERE email = ?`, email); err != nil {
		return fmt.Errorf("failed to clear onboarding[%s]: %w", email, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM onboarding_status`); err != nil {
		return fmt.Errorf("failed to clear onboarding: %w", err)
	}
	return nil
}
