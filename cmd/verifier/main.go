package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Verifier/internal/config"
	"github.com/Alias1177/Verifier/internal/verify"
	"github.com/Alias1177/Verifier/models"
)

// Snapshot is the input format: one market snapshot plus related news.
// The caller is responsible for fetching both; this binary only verifies.
type Snapshot struct {
	Market   models.Market        `json:"market"`
	Articles []models.NewsArticle `json:"articles"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	inputFile := flag.String("input", cfg.InputFile, "path to snapshot JSON (stdin when empty)")
	flag.Parse()

	var raw []byte
	if *inputFile != "" {
		raw, err = os.ReadFile(*inputFile)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read snapshot")
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse snapshot JSON")
	}

	engine := verify.New()
	result := engine.Verify(snapshot.Market, snapshot.Articles)

	var out []byte
	if cfg.PrettyOutput {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}

	fmt.Println(string(out))
}
