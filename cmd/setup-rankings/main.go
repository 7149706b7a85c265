package main

import (
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/trilobot/dbmaint/logger"
	"github.com/trilobot/dbmaint/storage"
)

var log = logger.New("setup-rankings")

func main() {
	path := strings.TrimSpace(os.Getenv("TRILO_RANKINGS_DB"))
	if path == "" {
		path = "data/databases/trilo_power_rankings.db"
	}

	db, err := storage.Create(path)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := db.Rankings.Setup(); err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Send()
	}

	_ = db.Close()

	log.Info().Msg("Power rankings database setup complete")
}
