package storage

import (
	"github.com/jmoiron/sqlx"

	"github.com/trilobot/dbmaint/logger"
	"github.com/trilobot/dbmaint/models"
)

type errorLogService struct {
	*sqlx.DB
	log *logger.Logger
}

func NewErrorLogService(db *sqlx.DB) *errorLogService {
	return &errorLogService{
		DB:  db,
		log: logger.New("errorLogService"),
	}
}

// Two rows sharing server, command and wall-clock second count as the
// same failure event no matter what their error type or message say.
const duplicateGroupsQuery = `SELECT server_id, command_name, timestamp, COUNT(*) AS count
	FROM error_log
	GROUP BY server_id, command_name,
	         strftime('%Y-%m-%d %H:%M:%S', timestamp)
	HAVING COUNT(*) > 1;`

// The ±3 second re-fetch window is wider than the same-second detection
// window: adjacent duplicate groups of the same server and command that
// lie within 3 seconds of each other merge into one. Known quirk, do
// not narrow without product guidance.
const windowQuery = `SELECT id, error_type, error_message, timestamp
	FROM error_log
	WHERE server_id = ? AND command_name = ?
	AND timestamp BETWEEN datetime(?, '-3 seconds') AND datetime(?, '+3 seconds')
	ORDER BY timestamp ASC, id ASC;`

func (db *errorLogService) DuplicateGroups() ([]models.DuplicateGroup, error) {
	var groups []models.DuplicateGroup
	err := db.Select(&groups, duplicateGroupsQuery)
	return groups, err
}

// Prune deletes near-duplicate error rows, keeping the earliest row of
// each group. The whole pass runs in one transaction; if anything fails
// nothing is committed.
func (db *errorLogService) Prune() (int, error) {
	tx, err := db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var groups []models.DuplicateGroup
	if err := tx.Select(&groups, duplicateGroupsQuery); err != nil {
		return 0, err
	}

	if len(groups) == 0 {
		db.log.Info().Msg("No duplicate error logs found")
		return 0, nil
	}

	db.log.Info().Msgf("Found %d groups with duplicate error logs", len(groups))

	totalDeleted := 0

	for _, group := range groups {
		var entries []models.ErrorLogEntry
		err := tx.Select(&entries, windowQuery, group.ServerID, group.CommandName, group.Timestamp, group.Timestamp)
		if err != nil {
			return 0, err
		}

		// An earlier group's window may already have swallowed these
		// rows, and NULL server or command context never matches the
		// equality re-fetch. Either way there is nothing to prune here.
		if len(entries) < 2 {
			continue
		}

		keep := entries[0]
		deleteIDs := make([]int64, 0, len(entries)-1)
		for _, entry := range entries[1:] {
			deleteIDs = append(deleteIDs, entry.ID)
		}

		query, args, err := sqlx.In(`DELETE FROM error_log WHERE id IN (?);`, deleteIDs)
		if err != nil {
			return 0, err
		}
		res, err := tx.Exec(tx.Rebind(query), args...)
		if err != nil {
			return 0, err
		}

		deleted, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		totalDeleted += int(deleted)

		db.log.Info().
			Str("server_id", group.ServerID.String).
			Str("command", group.CommandName.String).
			Str("timestamp", group.Timestamp.String).
			Int64("kept_id", keep.ID).
			Msgf("Deleted %d duplicate error logs", deleted)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return totalDeleted, nil
}

func (db *errorLogService) Count() (int, error) {
	const query = `SELECT COUNT(*) FROM error_log;`
	var count int
	err := db.Get(&count, query)
	return count, err
}
