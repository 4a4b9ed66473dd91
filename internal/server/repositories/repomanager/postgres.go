package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/trattoria/internal/dbx"
	"github.com/dmitrijs2005/trattoria/internal/server/migrations"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/onboarding"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/profile"
)

type PostgresRepositoryManager struct {
}

func (m *PostgresRepositoryManager) Profile(db dbx.DBTX) profile.Repository {
	return profile.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Onboarding(db dbx.DBTX) onboarding.Repository {
	return onboarding.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "postgres")
}
