package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES('k', x'01')`)
	require.NoError(t, err)

	var value []byte
	err = db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'k'`).Scan(&value)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, value)
}

func TestOpen_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
