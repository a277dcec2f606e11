// Command server runs the demo HTTP façade over the puzzle generator.
//
// Responsibilities:
//   - Load environment variables (from .env and process).
//   - Configure logging (zerolog).
//   - Load the dictionary and frequency table (embedded default or
//     files named by WORDLIST_FILE / FREQUENCY_FILE).
//   - Start the HTTP server exposing /api/v1/generate, /feedback,
//     /filter.
package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ashgrove-labs/wordle-puzzle/httpapi"
	"github.com/ashgrove-labs/wordle-puzzle/logger"
	"github.com/ashgrove-labs/wordle-puzzle/puzzle"
	"github.com/ashgrove-labs/wordle-puzzle/search"
	"github.com/ashgrove-labs/wordle-puzzle/wordlist"
)

func main() {
	// Load .env file if present (non-fatal if missing).
	_ = godotenv.Load()

	log := logger.New()

	dict, freq, err := wordlist.FromEnv()
	if err != nil {
		log.Error("failed to load word lists", "error", err)
		os.Exit(1)
	}

	cfg := search.DefaultConfig()
	if v := os.Getenv("MAX_ATTEMPTS"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}

	service := puzzle.NewService(dict, freq, cfg)
	srv := httpapi.New(service, log)

	addr := ":" + envStr("PORT", "8080")
	log.Info("wordle-puzzle listening", "addr", addr, "dictionary_size", dict.Len())

	if err := srv.Start(addr); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func envStr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
