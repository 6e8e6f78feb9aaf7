package wordlist

// LevelWord is one curated entry from the level word list (words.json).
// The asset carries more fields per entry; only these matter here and
// the rest are ignored.
type LevelWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Buckets maps stringified word lengths ("3".."7") to guessable words.
type Buckets map[string][]string

// LevelBuckets maps stringified word lengths to curated level words.
type LevelBuckets map[string][]LevelWord
