package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets.dir must not be empty")
	}
	if c.Assets.ValidWordsFile == "" {
		return fmt.Errorf("assets.valid_words_file must not be empty")
	}
	if c.Assets.LevelWordsFile == "" {
		return fmt.Errorf("assets.level_words_file must not be empty")
	}
	if c.Assets.DefinitionsFile == "" {
		return fmt.Errorf("assets.definitions_file must not be empty")
	}

	if c.WordNet.DataDir == "" {
		return fmt.Errorf("wordnet.data_dir must not be empty")
	}
	if c.WordNet.DatasetVersion == "" {
		return fmt.Errorf("wordnet.dataset_version must not be empty")
	}

	if c.Pipeline.ProgressEvery <= 0 {
		return fmt.Errorf("pipeline.progress_every must be > 0 (got %d)", c.Pipeline.ProgressEvery)
	}

	return nil
}
