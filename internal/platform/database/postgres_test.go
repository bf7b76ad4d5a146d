package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"wings_inventory/internal/platform/database/migrations"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_UsesEmbeddedDir(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(ctx context.Context, d *sql.DB, dir string) error {
		gotDir = dir
		assert.Same(t, db, d)
		return nil
	}

	require.NoError(t, Migrate(context.Background(), db))
	assert.Equal(t, ".", gotDir)
}

func TestMigrate_PropagatesError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })
	gooseUp = func(context.Context, *sql.DB, string) error { return errors.New("boom") }

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations: boom")
}

func TestEmbeddedMigrations_DefineSchema(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	users, err := fs.ReadFile(migrations.FS, "00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "UNIQUE (username)")
	assert.True(t, strings.HasPrefix(string(users), "-- +goose Up"))

	products, err := fs.ReadFile(migrations.FS, "00002_create_products.sql")
	require.NoError(t, err)
	assert.Contains(t, string(products), "CHECK (price >= 0)")
	assert.Contains(t, string(products), "CHECK (quantity >= 0)")
}
