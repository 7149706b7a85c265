package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trilobot/dbmaint/discordmock"
	"github.com/trilobot/dbmaint/models"
	"github.com/trilobot/dbmaint/storage"
)

func createLogsDB(t *testing.T) *storage.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trilo_command_logs.db")
	db, err := storage.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Migrate()
	require.NoError(t, err)

	return db
}

func insertError(t *testing.T, db *storage.DB, serverID, command, timestamp string) int64 {
	t.Helper()

	const query = `INSERT INTO error_log (error_type, command_name, server_id, user_id, error_message, timestamp)
	VALUES (?, ?, ?, ?, ?, ?);`
	res, err := db.Exec(query, "CommandInvokeError", command, serverID, discordmock.DefaultUserID, "something went wrong", timestamp)
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.db")

	_, err := storage.Open(path)
	require.ErrorIs(t, err, models.ErrStoreNotFound)
}

func TestOpenExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trilo_command_logs.db")

	db, err := storage.Create(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = storage.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestCreateMakesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "databases", "trilo_keys.db")

	db, err := storage.Create(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := createLogsDB(t)

	n, err := db.Migrate()
	require.NoError(t, err)
	require.Zero(t, n)
}
