package wordnet

import (
	"slices"

	"github.com/heartmarshall/wordjourney-tools/internal/domain"
)

// Lexicon is the in-memory view of a loaded dataset. Lookups are
// deterministic for a given dataset: entry senses keep their canonical
// order and base-form expansion is ordered.
type Lexicon struct {
	entries map[string][]string // word → synset IDs, resolution order
	synsets map[string]*Synset  // synset ID → synset
	forms   map[string][]string // inflected form → base words, sorted
	version string
	stats   Stats
}

// Senses returns all definition candidates for a word, in resolution
// order: the word's own entry senses first, then senses of each base
// form (form index, then suffix detachment), deduplicated by synset.
// An unknown word yields an empty slice, never an error.
func (lx *Lexicon) Senses(word string) []Candidate {
	normalized := domain.NormalizeLemma(word)
	if normalized == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []Candidate

	appendSynsets := func(ids []string) {
		for _, id := range ids {
			if seen[id] {
				continue
			}
			syn, ok := lx.synsets[id]
			if !ok {
				continue
			}
			seen[id] = true
			out = append(out, Candidate{
				SynsetID:     id,
				Definition:   syn.Definition,
				PartOfSpeech: syn.PartOfSpeech,
				Direct:       slices.Contains(syn.Members, normalized),
			})
		}
	}

	appendSynsets(lx.entries[normalized])
	for _, base := range lx.baseForms(normalized) {
		appendSynsets(lx.entries[base])
	}

	return out
}

// baseForms resolves a word to its base lemmas: exact hits from the
// dataset's form index first, then detachment-rule candidates that
// actually have entries.
func (lx *Lexicon) baseForms(word string) []string {
	var bases []string
	for _, b := range lx.forms[word] {
		if b != word && !slices.Contains(bases, b) {
			bases = append(bases, b)
		}
	}
	for _, b := range baseCandidates(word) {
		if b == word || slices.Contains(bases, b) {
			continue
		}
		if _, ok := lx.entries[b]; !ok {
			continue
		}
		bases = append(bases, b)
	}
	return bases
}

// Version returns the dataset version from the manifest, empty if the
// directory had none.
func (lx *Lexicon) Version() string { return lx.version }

// Stats returns loader statistics for logging.
func (lx *Lexicon) Stats() Stats { return lx.stats }
