package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/trilobot/dbmaint/logger"
	"github.com/trilobot/dbmaint/models"
)

type accessKeyService struct {
	*sqlx.DB
	log *logger.Logger
}

func NewAccessKeyService(db *sqlx.DB) *accessKeyService {
	return &accessKeyService{
		DB:  db,
		log: logger.New("accessKeyService"),
	}
}

const keysSchema = `
CREATE TABLE IF NOT EXISTS access_keys (
    key TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS used_keys (
    key TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS registered_servers (
    server_id INTEGER PRIMARY KEY,
    access_key TEXT
);

CREATE TABLE IF NOT EXISTS server_settings (
    server_id TEXT NOT NULL,
    setting TEXT NOT NULL,
    new_value TEXT NOT NULL,
    PRIMARY KEY (server_id, setting)
);`

// Setup creates the keys store tables. Safe to run repeatedly.
func (db *accessKeyService) Setup() error {
	_, err := db.Exec(keysSchema)
	return err
}

func insertKey(e sqlx.Execer, key string) error {
	const query = `INSERT INTO access_keys (key) VALUES (?);`
	_, err := e.Exec(query, key)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return models.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Insert adds a single access key. A key that is already present maps
// to models.ErrAlreadyExists instead of a raw driver error.
func (db *accessKeyService) Insert(key string) error {
	return insertKey(db.DB, key)
}

// Provision generates n random keys and inserts them, skipping any that
// collide with existing rows. Collisions are reported, never fatal.
func (db *accessKeyService) Provision(n int) (int, int, error) {
	tx, err := db.Beginx()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	inserted := 0
	skipped := 0

	for i := 0; i < n; i++ {
		key := uuid.NewString()
		if err := insertKey(tx, key); err != nil {
			if errors.Is(err, models.ErrAlreadyExists) {
				db.log.Warn().Msgf("Duplicate key detected, skipping: %s", key)
				skipped++
				continue
			}
			return 0, 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}

	return inserted, skipped, nil
}

func (db *accessKeyService) Count() (int, error) {
	const query = `SELECT COUNT(*) FROM access_keys;`
	var count int
	err := db.Get(&count, query)
	return count, err
}
