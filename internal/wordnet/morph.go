package wordnet

import (
	"slices"
	"strings"
)

// detachRule is one morphological suffix substitution.
type detachRule struct {
	suffix  string
	replace string
}

// detachRules lists the classic WordNet suffix detachments in
// application order: noun endings, then verb, then adjective.
var detachRules = []detachRule{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
	{"es", "e"},
	{"es", ""},
	{"ed", "e"},
	{"ed", ""},
	{"ing", "e"},
	{"ing", ""},
	{"er", ""},
	{"est", ""},
	{"er", "e"},
	{"est", "e"},
}

// baseCandidates returns every detachment-rule base for the word, in
// rule order, deduplicated. Candidates are not checked against the
// lexicon here; callers filter against known entries.
func baseCandidates(word string) []string {
	var out []string
	for _, r := range detachRules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		base := word[:len(word)-len(r.suffix)] + r.replace
		if base == "" || slices.Contains(out, base) {
			continue
		}
		out = append(out, base)
	}
	return out
}
