package onboarding

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE onboarding (
  id        INTEGER PRIMARY KEY,
  completed BOOLEAN
);`)
	require.NoError(t, err)
	return db
}

func TestGet_NoRowIsFalse(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	done, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, done)
}

func TestSet_ReplacesFlag(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, true))
	done, err := r.Get(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	require.NoError(t, r.Set(ctx, false))
	done, err = r.Get(ctx)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestDeleteAll_ResetsToFalse(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, true))
	require.NoError(t, r.DeleteAll(ctx))

	done, err := r.Get(ctx)
	require.NoError(t, err)
	assert.False(t, done)
}
