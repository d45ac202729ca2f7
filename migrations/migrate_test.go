// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first goose query fails
	err = Migrate(db)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), err.Error())
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.ErrorIs(t, err, errNilDB)

	err = MigrateClient(db)
	require.ErrorIs(t, err, errNilDB)
}

func TestMigrateClient_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateClient(db))
	// second run is a no-op
	require.NoError(t, MigrateClient(db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'client_session'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "client_session", name)
}

func TestEmbeddedMigrations(t *testing.T) {
	server, err := embedMigrations.ReadDir("server")
	require.NoError(t, err)
	assert.Len(t, server, 3)

	client, err := embedMigrations.ReadDir("client")
	require.NoError(t, err)
	assert.Len(t, client, 1)
}
