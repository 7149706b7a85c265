package models

import "database/sql"

type (
	ErrorLogService interface {
		DuplicateGroups() ([]DuplicateGroup, error)
		Prune() (int, error)
		Count() (int, error)
	}

	// ErrorLogEntry is one row of the error_log table. The logger that
	// writes these rows lives in the bot itself, not in this repository.
	ErrorLogEntry struct {
		ID           int64   `db:"id"`
		ErrorType    string  `db:"error_type"`
		CommandName  string  `db:"command_name"`
		ServerID     string  `db:"server_id"`
		UserID       string  `db:"user_id"`
		ErrorMessage string  `db:"error_message"`
		StackTrace   *string `db:"stack_trace"`
		Timestamp    string  `db:"timestamp"`
		Resolved     bool    `db:"resolved"`
	}

	// DuplicateGroup describes a set of error_log rows that share server,
	// command and wall-clock second and are therefore treated as one
	// logical failure event. The bot logs some errors without server or
	// command context, so the grouping columns are nullable.
	DuplicateGroup struct {
		ServerID    sql.NullString `db:"server_id"`
		CommandName sql.NullString `db:"command_name"`
		Timestamp   sql.NullString `db:"timestamp"`
		Count       int            `db:"count"`
	}
)
