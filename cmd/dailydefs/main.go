// Command dailydefs builds the daily-challenge definition file for the
// game assets: it filters the valid-word list against the curated level
// words and resolves one definition per remaining word from the local
// WordNet dataset. It is intended to be run offline as a build step.
//
// Flags:
//
//	--config   path to YAML config file (overrides CONFIG_PATH)
//	--dry-run  resolve definitions without writing the output file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordjourney-tools/internal/app"
	"github.com/heartmarshall/wordjourney-tools/internal/app/daily"
	"github.com/heartmarshall/wordjourney-tools/internal/config"
	"github.com/heartmarshall/wordjourney-tools/internal/wordnet"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "resolve definitions without writing the output file")
	flag.Parse()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting dailydefs",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pipeline := daily.NewPipeline(logger, daily.Config{
		ValidWordsPath: cfg.Assets.ValidWordsPath(),
		LevelWordsPath: cfg.Assets.LevelWordsPath(),
		WordNetDir:     cfg.WordNet.DataDir,
		OutputPath:     cfg.Assets.DefinitionsPath(),
		ReportPath:     cfg.Pipeline.ReportPath,
		ProgressEvery:  cfg.Pipeline.ProgressEvery,
		DryRun:         *dryRunFlag,
	})

	if _, err := pipeline.Run(ctx); err != nil {
		if errors.Is(err, wordnet.ErrDataMissing) {
			logger.Error("wordnet dataset not found, run fetch-wordnet first",
				slog.String("dir", cfg.WordNet.DataDir),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Error("pipeline failed", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
