package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/xid"

	"github.com/trilobot/dbmaint/logger"
	"github.com/trilobot/dbmaint/storage"
)

var log = logger.New("generate-keys")

func main() {
	path := strings.TrimSpace(os.Getenv("TRILO_KEYS_DB"))
	if path == "" {
		path = "data/databases/trilo_keys.db"
	}

	fmt.Print("How many access keys would you like to generate? ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		log.Fatal().Msg("Please enter a valid number")
	}

	db, err := storage.Create(path)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := db.AccessKeys.Setup(); err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Send()
	}

	inserted, skipped, err := db.AccessKeys.Provision(n)
	if err != nil {
		guid := xid.New().String()
		_ = db.Close()
		log.Fatal().Err(err).Str("guid", guid).Msg("Key provisioning aborted")
	}

	_ = db.Close()

	log.Info().Msgf("Successfully added %d new access keys", inserted)
	if skipped > 0 {
		log.Warn().Msgf("Skipped %d duplicate keys", skipped)
	}
}
