package wordnet

import "encoding/json"

// Synset is one sense shared by a group of member lemmas.
type Synset struct {
	ID           string
	Definition   string
	PartOfSpeech string
	Members      []string // normalized lemmas
}

// Candidate is one definition candidate produced by a Lexicon lookup,
// in resolution order.
type Candidate struct {
	SynsetID     string
	Definition   string
	PartOfSpeech string
	// Direct reports whether the queried word is one of the synset's own
	// member lemmas, as opposed to a sense reached through an inflected
	// form of another lemma.
	Direct bool
}

// Stats holds loader statistics for logging.
type Stats struct {
	EntryFiles    int
	SynsetFiles   int
	Entries       int
	Synsets       int
	Forms         int
	SkippedSenses int
}

// OEWN JSON deserialization types.

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]json.RawMessage

// oewnPOSEntry holds senses and inflected forms for a single POS of a word.
type oewnPOSEntry struct {
	Sense []oewnSense `json:"sense"`
	Form  []string    `json:"form"`
}

// oewnSense holds a single sense linking a word to a synset.
type oewnSense struct {
	ID     string `json:"id"`
	Synset string `json:"synset"`
}

// oewnSynset holds a single synset from a {pos}.{category}.json file.
type oewnSynset struct {
	Definition   []string `json:"definition"`
	Members      []string `json:"members"`
	PartOfSpeech string   `json:"partOfSpeech"`
}
