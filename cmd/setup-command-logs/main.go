package main

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/trilobot/dbmaint/logger"
	"github.com/trilobot/dbmaint/storage"
)

var log = logger.New("setup-command-logs")

func main() {
	path := strings.TrimSpace(os.Getenv("TRILO_COMMAND_LOGS_DB"))
	if path == "" {
		path = "data/databases/trilo_command_logs.db"
	}

	db, err := storage.Create(path)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	n, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Send()
	}

	_ = db.Close()

	if n > 0 {
		log.Info().Msgf("Applied %d migration(s)", n)
	}
	log.Info().Msg("Command logging database setup complete")
}
