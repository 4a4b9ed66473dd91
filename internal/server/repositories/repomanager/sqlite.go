package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/trattoria/internal/dbx"
	"github.com/dmitrijs2005/trattoria/internal/server/migrations"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/onboarding"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/profile"
)

// SQLiteRepositoryManager wires the SQLite repositories and migrations.
// The driver (modernc.org/sqlite) is imported at the composition root.
type SQLiteRepositoryManager struct {
}

func (m *SQLiteRepositoryManager) Profile(db dbx.DBTX) profile.Repository {
	return profile.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Onboarding(db dbx.DBTX) onboarding.Repository {
	return onboarding.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "sqlite")
}
