// Package wordnet loads the Open English WordNet JSON distribution into an
// in-memory Lexicon. Pure function: directory path in, queryable lexicon out.
// No database dependencies.
//
// Expected directory structure (as distributed by https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json … entries-z.json   lemma entries keyed by word
//	noun.*.json, verb.*.json, …       synsets keyed by synset ID
//	manifest.json                     optional fetch metadata
package wordnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/heartmarshall/wordjourney-tools/internal/domain"
)

// ErrDataMissing indicates the dataset directory does not exist or contains
// no entry files. Callers surface the fetch command as the remedy.
var ErrDataMissing = errors.New("wordnet data missing")

// Load reads an OEWN JSON directory and builds the in-memory lexicon.
func Load(dirPath string) (*Lexicon, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s: %w", dirPath, ErrDataMissing)
		}
		return nil, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}

	entryFiles, err := filepath.Glob(filepath.Join(dirPath, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob entry files: %w", err)
	}
	if len(entryFiles) == 0 {
		return nil, fmt.Errorf("no entry files in %s: %w", dirPath, ErrDataMissing)
	}

	synsetFiles, err := globSynsetFiles(dirPath)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}

	lx := &Lexicon{
		entries: make(map[string][]string),
		synsets: make(map[string]*Synset),
		forms:   make(map[string][]string),
	}
	lx.stats.EntryFiles = len(entryFiles)
	lx.stats.SynsetFiles = len(synsetFiles)

	// Synsets first, so entry senses can be checked against them.
	for _, path := range synsetFiles {
		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}

		for id, raw := range synsets {
			members := make([]string, 0, len(raw.Members))
			for _, m := range raw.Members {
				members = append(members, domain.NormalizeLemma(m))
			}
			lx.synsets[id] = &Synset{
				ID:           id,
				Definition:   firstDefinition(raw.Definition),
				PartOfSpeech: raw.PartOfSpeech,
				Members:      members,
			}
			lx.stats.Synsets++
		}
	}

	for _, path := range entryFiles {
		entries, err := readEntryFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}

		// Sorted raw keys: cased variants that normalize to the same
		// lemma ("China", "china") must merge in the same order on
		// every load.
		for _, word := range slices.Sorted(maps.Keys(entries)) {
			posMap := entries[word]
			normalized := domain.NormalizeLemma(word)
			if normalized == "" {
				continue
			}
			lx.stats.Entries++

			for _, pos := range rankedPOSKeys(posMap) {
				var posEntry oewnPOSEntry
				if err := json.Unmarshal(posMap[pos], &posEntry); err != nil {
					continue
				}
				for _, sense := range posEntry.Sense {
					if _, ok := lx.synsets[sense.Synset]; !ok {
						lx.stats.SkippedSenses++
						continue
					}
					lx.entries[normalized] = append(lx.entries[normalized], sense.Synset)
				}
				for _, form := range posEntry.Form {
					nf := domain.NormalizeLemma(form)
					if nf == "" || nf == normalized {
						continue
					}
					lx.forms[nf] = appendUnique(lx.forms[nf], normalized)
				}
			}
		}
	}

	// Alphabetical base order keeps form lookups stable across runs;
	// entry maps iterate in random order during the build.
	for _, bases := range lx.forms {
		slices.Sort(bases)
	}
	lx.stats.Forms = len(lx.forms)

	if m, err := ReadManifest(dirPath); err == nil {
		lx.version = m.DatasetVersion
	}

	return lx, nil
}

// rankedPOSKeys returns the POS keys of an entry in canonical order:
// n, v, a, s, r, then anything else. Sense order within a POS follows
// the file; this fixes the order across POS groups.
func rankedPOSKeys(posMap map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(posMap))
	for pos := range posMap {
		keys = append(keys, pos)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if ra, rb := posRank(a), posRank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
	return keys
}

func posRank(pos string) int {
	switch pos {
	case "n":
		return 0
	case "v":
		return 1
	case "a":
		return 2
	case "s":
		return 3
	case "r":
		return 4
	default:
		return 5
	}
}

// firstDefinition picks the first non-blank definition string of a synset.
func firstDefinition(defs []string) string {
	for _, d := range defs {
		if trimmed := strings.TrimSpace(d); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// readEntryFile reads a single entries-*.json file.
func readEntryFile(path string) (oewnEntryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var entries oewnEntryFile
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return entries, nil
}

// readSynsetFile reads a single synset file ({pos}.{category}.json).
func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds all synset files in the directory.
// Synset files follow the pattern: {pos}.{category}.json where pos is noun/verb/adj/adv.
func globSynsetFiles(dirPath string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dirPath, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}
	return result, nil
}

// appendUnique appends s to the slice only if not already present.
func appendUnique(sl []string, s string) []string {
	if slices.Contains(sl, s) {
		return sl
	}
	return append(sl, s)
}
