package main

import (
	"errors"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/xid"

	"github.com/trilobot/dbmaint/logger"
	"github.com/trilobot/dbmaint/models"
	"github.com/trilobot/dbmaint/storage"
)

var log = logger.New("drop-performance-metrics")

func main() {
	path := strings.TrimSpace(os.Getenv("TRILO_COMMAND_LOGS_DB"))
	if path == "" {
		path = "data/databases/trilo_command_logs.db"
	}

	db, err := storage.Open(path)
	if err != nil {
		if errors.Is(err, models.ErrStoreNotFound) {
			log.Fatal().Msgf("Command logs database not found: %s", path)
		}
		log.Fatal().Err(err).Send()
	}

	log.Info().Msg("Removing performance_metrics table...")

	dropped, err := db.PerformanceMetrics.Drop()
	if err != nil {
		guid := xid.New().String()
		_ = db.Close()
		log.Fatal().Err(err).Str("guid", guid).Msg("Migration aborted, nothing was committed")
	}

	_ = db.Close()

	if dropped {
		log.Info().Msg("performance_metrics table removed successfully")
	}
}
