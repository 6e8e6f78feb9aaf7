// Command fetch-wordnet downloads the Open English WordNet JSON dataset
// into the local data directory. A manifest file makes repeat runs
// no-ops until the configured dataset version changes.
//
// Flags:
//
//	--config  path to YAML config file (overrides CONFIG_PATH)
//	--force   re-download even when the manifest is current
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordjourney-tools/internal/adapter/oewn"
	"github.com/heartmarshall/wordjourney-tools/internal/app"
	"github.com/heartmarshall/wordjourney-tools/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	forceFlag := flag.Bool("force", false, "re-download even when the manifest is current")
	flag.Parse()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting fetch-wordnet", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	fetcher := oewn.NewFetcher(cfg.WordNet, logger)
	if _, err := fetcher.Fetch(ctx, *forceFlag); err != nil {
		logger.Error("fetch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
