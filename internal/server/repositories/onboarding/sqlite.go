package onboarding

import (
	"context"
	"database/sql"
	"errors"
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

func (r *SQLiteRepository) Set(ctx context.Context, completed bool) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM onboarding`); err != nil {
		return fmt.Errorf("failed to clear onboarding: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO onboarding (id, completed) VALUES (1, ?)`, completed); err != nil {
		return fmt.Errorf("failed to insert onboarding: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (bool, error) {
	var completed bool
	err := r.db.QueryRowContext(ctx, `SELECT completed FROM onboarding WHERE id = 1`).Scan(&completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read onboarding: %w", err)
	}
	return completed, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM onboarding`); err != nil {
		return fmt.Errorf("failed to delete onboarding: %w", err)
	}
	return nil
}
