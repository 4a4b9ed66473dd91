package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/trattoria/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) SetActive(ctx context.Context, email string) error {
	query := `INSERT INTO active_user (id, email) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET email = excluded.email`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("failed to set active user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Active(ctx context.Context) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx, `SELECT email FROM active_user WHERE id = 1`).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get active user: %w", err)
	}
	return email, nil
}

func (r *SQLiteRepository) ClearActive(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM active_user`); err != nil {
		return fmt.Errorf("failed to clear active user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Create(ctx context.Context, token, email string, expiresAt time.Time) error {
	query := `INSERT INTO user_sessions (token, email, expires_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, token, email, expiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteFor(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_sessions WHERE email = ?`, email); err != nil {
		return fmt.Errorf("failed to delete sessions[%s]: %w", email, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_sessions`); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM active_user`); err != nil {
		return fmt.Errorf("failed to delete active user: %w", err)
	}
	return nil
}
