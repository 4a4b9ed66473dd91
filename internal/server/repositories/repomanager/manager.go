// Package repomanager selects the repository implementations and migrations
// for the configured database backend.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/trattoria/internal/dbx"
	"github.com/dmitrijs2005/trattoria/internal/server/config"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/onboarding"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/profile"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profile(db dbx.DBTX) profile.Repository
	Onboarding(db dbx.DBTX) onboarding.Repository
}

// New returns the manager for the given backend type.
func New(databaseType string) (RepositoryManager, error) {
	switch databaseType {
	case config.DatabaseSQLite:
		return &SQLiteRepositoryManager{}, nil
	case config.DatabasePostgres:
		return &PostgresRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unknown database type: %q", databaseType)
	}
}
