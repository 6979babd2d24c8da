package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "migrate.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUp_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	version, err := Up(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	for _, table := range []string{"pets", "pet_inventory"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestUp_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	_, err := Up(ctx, db, SQLite)
	require.NoError(t, err)

	version, err := Up(ctx, db, SQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestUp_UnknownDialect(t *testing.T) {
	_, err := Up(context.Background(), openSQLite(t), Dialect("oracle"))
	assert.Error(t, err)
}
