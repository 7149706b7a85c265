package storage

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/trilobot/dbmaint/models"
)

//go:embed migrations/*
var embeddedMigrations embed.FS

type DB struct {
	*sqlx.DB
	ErrorLog           models.ErrorLogService
	AccessKeys         models.AccessKeyService
	Rankings           models.RankingService
	PerformanceMetrics models.PerformanceMetricsService
}

// Open connects to an existing database file. SQLite happily creates an
// empty database for any path it is pointed at, so the existence check
// has to happen before the driver sees the path.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrStoreNotFound
		}
		return nil, err
	}
	return connect(path)
}

// Create connects to a database file, creating it and its parent
// directory if needed.
func Create(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return connect(path)
}

func connect(path string) (*DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db = db.Unsafe()

	// These are short-lived maintenance scripts; one connection is all
	// they ever hold.
	db.SetMaxOpenConns(1)

	return &DB{
		DB:                 db,
		ErrorLog:           NewErrorLogService(db),
		AccessKeys:         NewAccessKeyService(db),
		Rankings:           NewRankingService(db),
		PerformanceMetrics: NewPerformanceMetricsService(db),
	}, nil
}

// Migrate applies the embedded command-logs migrations.
func (db *DB) Migrate() (int, error) {
	migrations := &migrate.EmbedFileSystemMigrationSource{FileSystem: embeddedMigrations, Root: "migrations"}
	return migrate.Exec(db.DB.DB, "sqlite3", migrations, migrate.Up)
}
