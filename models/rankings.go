package models

type (
	RankingService interface {
		Setup() error
	}

	RankingSubmission struct {
		SubmissionID int64  `db:"submission_id"`
		UserID       int64  `db:"user_id"`
		ServerID     string `db:"server_id"`
		Season       string `db:"season"`
		Week         string `db:"week"`
		Rank1        *int64 `db:"rank_1"`
		Rank2        *int64 `db:"rank_2"`
		Rank3        *int64 `db:"rank_3"`
		Rank4        *int64 `db:"rank_4"`
		Rank5        *int64 `db:"rank_5"`
		Rank6        *int64 `db:"rank_6"`
		Rank7        *int64 `db:"rank_7"`
		Rank8        *int64 `db:"rank_8"`
		Rank9        *int64 `db:"rank_9"`
		Rank10       *int64 `db:"rank_10"`
		Timestamp    string `db:"timestamp"`
	}

	ActiveWeek struct {
		ServerID string `db:"server_id"`
		Season   string `db:"season"`
		Week     string `db:"week"`
	}

	AvailableWeek struct {
		ID       int64  `db:"id"`
		ServerID string `db:"server_id"`
		Season   string `db:"season"`
		Week     string `db:"week"`
	}
)
