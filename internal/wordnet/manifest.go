package wordnet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestFile is the metadata file the fetcher writes next to the dataset.
const ManifestFile = "manifest.json"

// Manifest describes a downloaded dataset snapshot.
type Manifest struct {
	DatasetVersion string    `json:"dataset_version"`
	SourceURL      string    `json:"source_url"`
	SHA256         string    `json:"sha256"`
	FetchedAt      time.Time `json:"fetched_at"`
	Files          int       `json:"files"`
}

// ReadManifest reads the dataset manifest from the given directory.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// WriteManifest writes the dataset manifest into the given directory.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
