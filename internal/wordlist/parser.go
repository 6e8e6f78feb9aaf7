// Package wordlist parses the game's bundled word list assets and builds
// the daily challenge pool. Pure functions: file path in, domain structs out.
// No database dependencies.
package wordlist

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseValid reads the guessable word list (valid_words.json):
// a JSON object keyed by stringified lengths, values are word arrays.
func ParseValid(path string) (Buckets, error) {
	var buckets Buckets
	if err := decodeFile(path, &buckets); err != nil {
		return nil, fmt.Errorf("valid words: %w", err)
	}
	return buckets, nil
}

// ParseLevels reads the curated level word list (words.json): same keys,
// values are arrays of objects with at least word and definition.
func ParseLevels(path string) (LevelBuckets, error) {
	var buckets LevelBuckets
	if err := decodeFile(path, &buckets); err != nil {
		return nil, fmt.Errorf("level words: %w", err)
	}
	return buckets, nil
}

// decodeFile decodes a JSON asset into v. The shipped assets sometimes
// start with a UTF-8 BOM, which encoding/json rejects, so the reader
// strips one when present.
func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}
