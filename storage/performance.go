package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/trilobot/dbmaint/logger"
)

type performanceMetricsService struct {
	*sqlx.DB
	log *logger.Logger
}

func NewPerformanceMetricsService(db *sqlx.DB) *performanceMetricsService {
	return &performanceMetricsService{
		DB:  db,
		log: logger.New("performanceMetricsService"),
	}
}

func (db *performanceMetricsService) Exists() (bool, error) {
	const query = `SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'performance_metrics';`
	var name string
	err := db.Get(&name, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Drop removes the deprecated performance_metrics table and its indexes.
// Returns false when there was nothing to remove; no destructive
// statement runs in that case.
func (db *performanceMetricsService) Drop() (bool, error) {
	exists, err := db.Exists()
	if err != nil {
		return false, err
	}
	if !exists {
		db.log.Info().Msg("performance_metrics table doesn't exist - nothing to remove")
		return false, nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE performance_metrics;`); err != nil {
		return false, err
	}
	if _, err := tx.Exec(`DROP INDEX IF EXISTS idx_performance_timestamp;`); err != nil {
		return false, err
	}
	if _, err := tx.Exec(`DROP INDEX IF EXISTS idx_performance_command;`); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}
