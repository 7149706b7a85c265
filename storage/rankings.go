package storage

import (
	"github.com/jmoiron/sqlx"

	"github.com/trilobot/dbmaint/logger"
)

type rankingService struct {
	*sqlx.DB
	log *logger.Logger
}

func NewRankingService(db *sqlx.DB) *rankingService {
	return &rankingService{
		DB:  db,
		log: logger.New("rankingService"),
	}
}

const rankingsSchema = `
CREATE TABLE IF NOT EXISTS ranking_submissions (
    submission_id     INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id           INTEGER NOT NULL,
    server_id         TEXT NOT NULL,
    season            TEXT NOT NULL,
    week              TEXT NOT NULL,
    rank_1            INTEGER,
    rank_2            INTEGER,
    rank_3            INTEGER,
    rank_4            INTEGER,
    rank_5            INTEGER,
    rank_6            INTEGER,
    rank_7            INTEGER,
    rank_8            INTEGER,
    rank_9            INTEGER,
    rank_10           INTEGER,
    timestamp         DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS active_week (
    server_id TEXT PRIMARY KEY,
    season    TEXT NOT NULL,
    week      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS available_weeks (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    server_id TEXT NOT NULL,
    season    TEXT NOT NULL,
    week      TEXT NOT NULL,
    UNIQUE(server_id, season, week)
);`

// Setup creates the power rankings tables. Safe to run repeatedly; an
// existing table is left untouched, rows and all.
func (db *rankingService) Setup() error {
	_, err := db.Exec(rankingsSchema)
	return err
}
