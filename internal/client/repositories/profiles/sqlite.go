package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/trattoria/internal/client/models"
	"github.com/dmitrijs2005/trattoria/internal/common"
	"github.com/dmitrijs2005/trattoria/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, p *models.Profile) error {
	prefs, err := json.Marshal(p.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	query := `INSERT INTO user_profiles (email, name, phone, preferences, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET name = excluded.name,
			phone = excluded.phone,
			preferences = excluded.preferences,
			updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query,
		p.Email, p.Name, p.Phone, string(prefs), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT email, name, phone, preferences, created_at, updated_at
		FROM user_profiles WHERE email = ?`

	p := &models.Profile{}
	var prefs string
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&p.Email, &p.Name, &p.Phone, &prefs, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile[%s]: %w", email, err)
	}
	if prefs != "" {
		if err := json.Unmarshal([]byte(prefs), &p.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences[%s]: %w", email, err)
		}
	}
	return p, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("failed to delete profile[%s]: %w", email, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles`)
	if err != nil {
		return fmt.Errorf("failed to delete profiles: %w", err)
	}
	return nil
}
