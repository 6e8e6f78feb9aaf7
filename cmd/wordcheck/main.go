// Command wordcheck prints a per-bucket summary table of the curated
// level words, for a quick review of bucket sizes and definitions.
//
// Flags:
//
//	--config   path to YAML config file (overrides CONFIG_PATH)
//	--samples  words previewed per length bucket (default 5)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/wordjourney-tools/internal/app"
	"github.com/heartmarshall/wordjourney-tools/internal/app/inspect"
	"github.com/heartmarshall/wordjourney-tools/internal/config"
	"github.com/heartmarshall/wordjourney-tools/internal/wordlist"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	samplesFlag := flag.Int("samples", 5, "words previewed per length bucket")
	flag.Parse()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	levels, err := wordlist.ParseLevels(cfg.Assets.LevelWordsPath())
	if err != nil {
		logger.Error("parse level words", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inspect.RenderTable(os.Stdout, inspect.Summarize(levels, *samplesFlag))
}
