package config

import (
	"path/filepath"
)

// Config is the root configuration shared by the word tooling commands.
type Config struct {
	Assets   AssetsConfig   `yaml:"assets"`
	WordNet  WordNetConfig  `yaml:"wordnet"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// AssetsConfig locates the game asset files the tools read and write.
// Paths are resolved relative to the working directory, which is expected
// to be the repository root of the game checkout.
type AssetsConfig struct {
	Dir             string `yaml:"dir"              env:"ASSETS_DIR"              env-default:"app/src/main/assets"`
	ValidWordsFile  string `yaml:"valid_words_file" env:"ASSETS_VALID_WORDS_FILE" env-default:"valid_words.json"`
	LevelWordsFile  string `yaml:"level_words_file" env:"ASSETS_LEVEL_WORDS_FILE" env-default:"words.json"`
	DefinitionsFile string `yaml:"definitions_file" env:"ASSETS_DEFINITIONS_FILE" env-default:"daily_word_definitions.json"`
}

// WordNetConfig holds the local Open English WordNet dataset settings.
type WordNetConfig struct {
	DataDir        string `yaml:"data_dir"        env:"WORDNET_DATA_DIR"        env-default:"data/wordnet"`
	DownloadURL    string `yaml:"download_url"    env:"WORDNET_DOWNLOAD_URL"    env-default:"https://en-word.net/static/english-wordnet-json-2024.zip"`
	DatasetVersion string `yaml:"dataset_version" env:"WORDNET_DATASET_VERSION" env-default:"2024"`
}

// PipelineConfig holds batch pipeline settings.
type PipelineConfig struct {
	ProgressEvery int    `yaml:"progress_every" env:"PIPELINE_PROGRESS_EVERY" env-default:"1000"`
	ReportPath    string `yaml:"report_path"    env:"PIPELINE_REPORT_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ValidWordsPath returns the full path to the guessable word list.
func (a AssetsConfig) ValidWordsPath() string {
	return filepath.Join(a.Dir, a.ValidWordsFile)
}

// LevelWordsPath returns the full path to the curated level word list.
func (a AssetsConfig) LevelWordsPath() string {
	return filepath.Join(a.Dir, a.LevelWordsFile)
}

// DefinitionsPath returns the full path to the generated definitions file.
func (a AssetsConfig) DefinitionsPath() string {
	return filepath.Join(a.Dir, a.DefinitionsFile)
}
