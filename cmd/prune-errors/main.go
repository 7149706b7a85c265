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

var log = logger.New("prune-errors")

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

	log.Info().Msg("Cleaning up duplicate error logs...")

	deleted, err := db.ErrorLog.Prune()
	if err != nil {
		guid := xid.New().String()
		_ = db.Close()
		log.Fatal().Err(err).Str("guid", guid).Msg("Pruning pass aborted, nothing was committed")
	}

	remaining, err := db.ErrorLog.Count()
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Send()
	}

	_ = db.Close()

	log.Info().Msgf("Duplicate error cleanup complete, %d error logs removed", deleted)
	log.Info().Msgf("Remaining entries: %d", remaining)
}
