package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilobot/dbmaint/models"
	"github.com/trilobot/dbmaint/storage"
)

func createKeysDB(t *testing.T) *storage.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trilo_keys.db")
	db, err := storage.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, db.AccessKeys.Setup())
	return db
}

func TestKeysSetupIsIdempotent(t *testing.T) {
	db := createKeysDB(t)

	require.NoError(t, db.AccessKeys.Insert("11111111-1111-1111-1111-111111111111"))
	require.NoError(t, db.AccessKeys.Setup())

	count, err := db.AccessKeys.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProvisionInsertsRequestedCount(t *testing.T) {
	db := createKeysDB(t)

	inserted, skipped, err := db.AccessKeys.Provision(5)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
	assert.Zero(t, skipped)

	inserted, skipped, err = db.AccessKeys.Provision(3)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Zero(t, skipped)

	count, err := db.AccessKeys.Count()
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestInsertDuplicateKeyIsReportedNotFatal(t *testing.T) {
	db := createKeysDB(t)

	require.NoError(t, db.AccessKeys.Insert("22222222-2222-2222-2222-222222222222"))

	err := db.AccessKeys.Insert("22222222-2222-2222-2222-222222222222")
	require.ErrorIs(t, err, models.ErrAlreadyExists)

	count, err := db.AccessKeys.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
