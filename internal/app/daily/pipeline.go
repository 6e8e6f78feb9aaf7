// Package daily builds the daily-challenge definition file shipped with
// the game assets: it derives the word pool from the two word lists,
// resolves one definition per pool word from the lexical dataset and
// writes the result as a single flat JSON object.
package daily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/wordjourney-tools/internal/wordlist"
	"github.com/heartmarshall/wordjourney-tools/internal/wordnet"
)

// Config holds the file paths and knobs for one pipeline run.
type Config struct {
	ValidWordsPath string
	LevelWordsPath string
	WordNetDir     string
	OutputPath     string
	ReportPath     string // optional run report, skipped when empty
	ProgressEvery  int
	DryRun         bool
}

// Result holds the outcome of a pipeline run.
type Result struct {
	PoolSize int
	Defined  int
	Missing  int
	Duration time.Duration
}

// MissingPercent returns the share of pool words without a definition.
func (r Result) MissingPercent() float64 {
	if r.PoolSize == 0 {
		return 0
	}
	return float64(r.Missing) / float64(r.PoolSize) * 100
}

// Pipeline orchestrates the pool build and definition resolution.
type Pipeline struct {
	log *slog.Logger
	cfg Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg Config) *Pipeline {
	return &Pipeline{log: log, cfg: cfg}
}

// Run executes the pipeline: read word lists, build the pool, resolve
// definitions in sorted order and write the output file. Words without
// a usable definition are counted and omitted, never an error.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	// Step 1: Read the word lists.
	valid, err := wordlist.ParseValid(p.cfg.ValidWordsPath)
	if err != nil {
		return Result{}, err
	}
	levels, err := wordlist.ParseLevels(p.cfg.LevelWordsPath)
	if err != nil {
		return Result{}, err
	}

	// Step 2: Build the daily pool.
	pool, stats := wordlist.BuildDailyPool(valid, levels)
	p.log.Info("daily pool built",
		slog.Int("candidates", stats.ValidCandidates),
		slog.Int("level_words", stats.LevelWords),
		slog.Int("pool_size", stats.PoolSize),
	)

	// Step 3: Load the lexical dataset.
	lx, err := wordnet.Load(p.cfg.WordNetDir)
	if err != nil {
		return Result{}, fmt.Errorf("load wordnet: %w", err)
	}
	ls := lx.Stats()
	p.log.Info("wordnet loaded",
		slog.String("version", lx.Version()),
		slog.Int("entries", ls.Entries),
		slog.Int("synsets", ls.Synsets),
	)

	// Step 4: Resolve definitions in sorted order.
	words := slices.Sorted(maps.Keys(pool))
	every := p.cfg.ProgressEvery
	if every <= 0 {
		every = 1000
	}

	defs := make(map[string]string, len(words))
	missing := 0
	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("resolve definitions: %w", err)
		}
		if defn, ok := BestDefinition(lx, strings.ToLower(w)); ok {
			defs[w] = defn
		} else {
			missing++
		}
		if done := i + 1; done%every == 0 || done == len(words) {
			p.log.Info("resolving definitions",
				slog.Int("done", done),
				slog.Int("total", len(words)),
			)
		}
	}

	res := Result{
		PoolSize: len(words),
		Defined:  len(defs),
		Missing:  missing,
		Duration: time.Since(start),
	}

	// Step 5: Write the output file.
	if p.cfg.DryRun {
		p.log.Info("dry run, skipping write", slog.String("output", p.cfg.OutputPath))
	} else {
		if err := WriteDefinitions(p.cfg.OutputPath, defs); err != nil {
			return Result{}, err
		}
		p.log.Info("definitions written",
			slog.String("output", p.cfg.OutputPath),
			slog.Int("count", len(defs)),
		)
		if p.cfg.ReportPath != "" {
			if err := writeReport(p.cfg.ReportPath, p.cfg.OutputPath, lx.Version(), res); err != nil {
				p.log.Warn("report write failed", slog.String("error", err.Error()))
			}
		}
	}

	// Step 6: Summary.
	p.log.Info("daily definitions complete",
		slog.Int("pool", res.PoolSize),
		slog.Int("defined", res.Defined),
		slog.Int("missing", res.Missing),
		slog.String("missing_percent", fmt.Sprintf("%.1f%%", res.MissingPercent())),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// WriteDefinitions writes the word→definition map as one compact JSON
// object: keys in ascending order, UTF-8 left unescaped, a single
// trailing newline. The file is replaced wholesale on every run.
func WriteDefinitions(path string, defs map[string]string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(defs); err != nil {
		return fmt.Errorf("encode definitions: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write definitions: %w", err)
	}
	return nil
}
