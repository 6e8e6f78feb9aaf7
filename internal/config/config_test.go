package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
assets:
  dir: "game/src/main/assets"
  valid_words_file: "valid_words.json"
  level_words_file: "words.json"
  definitions_file: "daily_word_definitions.json"

wordnet:
  data_dir: "data/oewn"
  download_url: "https://example.com/wordnet.zip"
  dataset_version: "2024"

pipeline:
  progress_every: 500
  report_path: "reports/daily.json"

log:
  level: "debug"
  format: "json"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assets
	if cfg.Assets.Dir != "game/src/main/assets" {
		t.Errorf("assets.dir = %q, want %q", cfg.Assets.Dir, "game/src/main/assets")
	}
	if cfg.Assets.ValidWordsFile != "valid_words.json" {
		t.Errorf("assets.valid_words_file = %q", cfg.Assets.ValidWordsFile)
	}

	// WordNet
	if cfg.WordNet.DataDir != "data/oewn" {
		t.Errorf("wordnet.data_dir = %q, want %q", cfg.WordNet.DataDir, "data/oewn")
	}
	if cfg.WordNet.DatasetVersion != "2024" {
		t.Errorf("wordnet.dataset_version = %q, want %q", cfg.WordNet.DatasetVersion, "2024")
	}

	// Pipeline
	if cfg.Pipeline.ProgressEvery != 500 {
		t.Errorf("pipeline.progress_every = %d, want 500", cfg.Pipeline.ProgressEvery)
	}
	if cfg.Pipeline.ReportPath != "reports/daily.json" {
		t.Errorf("pipeline.report_path = %q", cfg.Pipeline.ReportPath)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PIPELINE_PROGRESS_EVERY", "250")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Pipeline.ProgressEvery != 250 {
		t.Errorf("pipeline.progress_every = %d, want 250 (ENV override)", cfg.Pipeline.ProgressEvery)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Assets.Dir != "app/src/main/assets" {
		t.Errorf("assets.dir = %q, want default", cfg.Assets.Dir)
	}
	if cfg.Assets.DefinitionsFile != "daily_word_definitions.json" {
		t.Errorf("assets.definitions_file = %q, want default", cfg.Assets.DefinitionsFile)
	}
	if cfg.WordNet.DataDir != "data/wordnet" {
		t.Errorf("wordnet.data_dir = %q, want default", cfg.WordNet.DataDir)
	}
	if cfg.Pipeline.ProgressEvery != 1000 {
		t.Errorf("pipeline.progress_every = %d, want 1000 (default)", cfg.Pipeline.ProgressEvery)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q (default)", cfg.Log.Format, "text")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pipeline.ProgressEvery != 500 {
		t.Errorf("pipeline.progress_every = %d, want 500", cfg.Pipeline.ProgressEvery)
	}
}

func TestLoadFile_MissingPath(t *testing.T) {
	_, err := LoadFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_EmptyAssetsDir(t *testing.T) {
	cfg := validConfig()
	cfg.Assets.Dir = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty assets.dir")
	}
}

func TestValidate_EmptyDefinitionsFile(t *testing.T) {
	cfg := validConfig()
	cfg.Assets.DefinitionsFile = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty assets.definitions_file")
	}
}

func TestValidate_EmptyWordNetDir(t *testing.T) {
	cfg := validConfig()
	cfg.WordNet.DataDir = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty wordnet.data_dir")
	}
}

func TestValidate_ProgressEveryZero(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.ProgressEvery = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for progress_every = 0")
	}
}

func TestValidate_ProgressEveryNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.ProgressEvery = -5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative progress_every")
	}
}

func TestAssetsConfig_Paths(t *testing.T) {
	a := AssetsConfig{
		Dir:             "assets",
		ValidWordsFile:  "valid_words.json",
		LevelWordsFile:  "words.json",
		DefinitionsFile: "daily_word_definitions.json",
	}

	if got := a.ValidWordsPath(); got != filepath.Join("assets", "valid_words.json") {
		t.Errorf("ValidWordsPath() = %q", got)
	}
	if got := a.LevelWordsPath(); got != filepath.Join("assets", "words.json") {
		t.Errorf("LevelWordsPath() = %q", got)
	}
	if got := a.DefinitionsPath(); got != filepath.Join("assets", "daily_word_definitions.json") {
		t.Errorf("DefinitionsPath() = %q", got)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Assets: AssetsConfig{
			Dir:             "app/src/main/assets",
			ValidWordsFile:  "valid_words.json",
			LevelWordsFile:  "words.json",
			DefinitionsFile: "daily_word_definitions.json",
		},
		WordNet: WordNetConfig{
			DataDir:        "data/wordnet",
			DatasetVersion: "2024",
		},
		Pipeline: PipelineConfig{
			ProgressEvery: 1000,
		},
	}
}
