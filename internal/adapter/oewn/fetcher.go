// Package oewn downloads the Open English WordNet JSON dataset archive
// and unpacks the files the lexicon loader reads.
package oewn

import (
	"archive/zip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/wordjourney-tools/internal/config"
	"github.com/heartmarshall/wordjourney-tools/internal/wordnet"
)

// Fetcher downloads and unpacks the lexical dataset archive.
type Fetcher struct {
	cfg        config.WordNetConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher for the configured dataset.
func NewFetcher(cfg config.WordNetConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
		log:        logger.With("adapter", "oewn"),
	}
}

// Fetch ensures the configured dataset version is present in the data
// dir. Unless force is set, a manifest recording the same version makes
// Fetch a no-op. The archive is streamed to a temp file and hashed, and
// only the dataset JSON files are extracted, flattened to basenames.
func (f *Fetcher) Fetch(ctx context.Context, force bool) (wordnet.Manifest, error) {
	if !force {
		if m, err := wordnet.ReadManifest(f.cfg.DataDir); err == nil && m.DatasetVersion == f.cfg.DatasetVersion {
			f.log.Info("dataset up to date",
				slog.String("version", m.DatasetVersion),
				slog.String("dir", f.cfg.DataDir),
			)
			return m, nil
		}
	}

	if err := os.MkdirAll(f.cfg.DataDir, 0755); err != nil {
		return wordnet.Manifest{}, fmt.Errorf("oewn: create data dir: %w", err)
	}

	archivePath, sum, err := f.download(ctx)
	if err != nil {
		return wordnet.Manifest{}, err
	}
	defer os.Remove(archivePath)

	files, err := f.extract(archivePath)
	if err != nil {
		return wordnet.Manifest{}, err
	}
	if files == 0 {
		return wordnet.Manifest{}, fmt.Errorf("oewn: archive from %s contains no dataset files", f.cfg.DownloadURL)
	}

	m := wordnet.Manifest{
		DatasetVersion: f.cfg.DatasetVersion,
		SourceURL:      f.cfg.DownloadURL,
		SHA256:         sum,
		FetchedAt:      time.Now().UTC(),
		Files:          files,
	}
	if err := wordnet.WriteManifest(f.cfg.DataDir, m); err != nil {
		return wordnet.Manifest{}, fmt.Errorf("oewn: %w", err)
	}

	f.log.Info("dataset fetched",
		slog.String("version", m.DatasetVersion),
		slog.Int("files", files),
		slog.String("sha256", sum),
	)
	return m, nil
}

// download streams the archive to a temp file inside the data dir,
// hashing the bytes as they arrive.
func (f *Fetcher) download(ctx context.Context) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.DownloadURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("oewn: create request: %w", err)
	}

	f.log.Info("downloading dataset", slog.String("url", f.cfg.DownloadURL))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("oewn: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("oewn: unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(f.cfg.DataDir, "oewn-*.zip")
	if err != nil {
		return "", "", fmt.Errorf("oewn: create temp file: %w", err)
	}

	hash := sha256.New()
	_, err = io.Copy(tmp, io.TeeReader(resp.Body, hash))
	closeErr := tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("oewn: download: %w", err)
	}
	if closeErr != nil {
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("oewn: close temp file: %w", closeErr)
	}

	return tmp.Name(), hex.EncodeToString(hash.Sum(nil)), nil
}

// extract writes the dataset files from the archive into the data dir.
// Entries are flattened to their basenames; archive paths are not
// honored.
func (f *Fetcher) extract(archivePath string) (int, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("oewn: open archive: %w", err)
	}
	defer r.Close()

	count := 0
	for _, zf := range r.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		name := path.Base(zf.Name)
		if !datasetFile(name) {
			continue
		}
		if err := f.extractFile(zf, filepath.Join(f.cfg.DataDir, name)); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (f *Fetcher) extractFile(zf *zip.File, dest string) error {
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("oewn: open %s in archive: %w", zf.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("oewn: create %s: %w", dest, err)
	}

	_, err = io.Copy(out, rc)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("oewn: extract %s: %w", zf.Name, err)
	}
	if closeErr != nil {
		return fmt.Errorf("oewn: close %s: %w", dest, closeErr)
	}
	return nil
}

// datasetFile reports whether a basename belongs to the dataset layout
// the loader reads.
func datasetFile(name string) bool {
	if !strings.HasSuffix(name, ".json") {
		return false
	}
	if strings.HasPrefix(name, "entries-") {
		return true
	}
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
