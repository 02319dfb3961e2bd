package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/rggevent/boardwatch/internal/cache"
	"github.com/rggevent/boardwatch/internal/database"
	"github.com/rggevent/boardwatch/internal/gamestate"
	"github.com/rggevent/boardwatch/internal/history"
)

// Seeds the cache table from saved upstream responses so a fresh daemon can
// serve a board before the first successful poll.
func main() {
	statePath := flag.String("state", "", "Path to a saved game state JSON response")
	historyPath := flag.String("history", "", "Path to a saved history JSON response")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatal("Error: Required environment variable DB_NAME is not set.")
	}
	if *statePath == "" && *historyPath == "" {
		log.Fatal("Nothing to seed, pass -state and/or -history")
	}

	log.Info("Starting cache seeder...")
	db, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer db.Close()
	store := cache.New(db)

	if *statePath != "" {
		body := mustRead(*statePath)
		snap, err := gamestate.Parse(body)
		if err != nil {
			log.Fatalf("Failed to parse state %s: %s", *statePath, err)
		}
		store.Save(cache.KeyLiteState, snap.Players)
		log.Info("Seeded lite state", "players", len(snap.Players))
	}

	if *historyPath != "" {
		body := mustRead(*historyPath)
		hist, err := history.Parse(body)
		if err != nil {
			log.Fatalf("Failed to parse history %s: %s", *historyPath, err)
		}
		store.Save(cache.KeyHistory, hist)
		log.Info("Seeded history", "players", len(hist))
	}
}

func mustRead(path string) []byte {
	body, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %s", path, err)
	}
	return body
}
