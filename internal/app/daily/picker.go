package daily

import (
	"strings"

	"github.com/heartmarshall/wordjourney-tools/internal/wordnet"
)

// properNounPrefixes marks definitions that describe a person, place or
// nationality rather than the word itself. Matched case-insensitively
// against the start of the definition text.
var properNounPrefixes = []string{
	"united states",
	"english ",
	"british ",
	"us ",
	"an american",
	"american ",
	"scottish ",
	"french ",
	"german ",
	"swiss ",
	"italian ",
	"dutch ",
	"spanish ",
	"greek ",
	"roman ",
	"latin ",
	"danish ",
	"irish ",
	"jewish ",
	"a member of ",
	"a native of ",
	"a follower of ",
	"a person who ",
	"a person born",
}

// BestDefinition picks one definition for a pool word.
//
// Senses where the word itself is among the synset's surface forms are
// preferred over senses reached through a derived form. Within the
// preferred set the first definition that does not read like a
// proper-noun gloss wins, blank or not; when every candidate reads like
// one, the first candidate is returned regardless. The boolean is false
// when the word has no senses at all or the chosen definition is empty.
func BestDefinition(lx *wordnet.Lexicon, word string) (string, bool) {
	senses := lx.Senses(word)
	if len(senses) == 0 {
		return "", false
	}

	candidates := senses
	if direct := directSenses(senses); len(direct) > 0 {
		candidates = direct
	}

	for _, c := range candidates {
		if !isProperNounGloss(c.Definition) {
			return c.Definition, c.Definition != ""
		}
	}

	// Every candidate was filtered. Fall back to the first one.
	defn := candidates[0].Definition
	return defn, defn != ""
}

func directSenses(senses []wordnet.Candidate) []wordnet.Candidate {
	var direct []wordnet.Candidate
	for _, c := range senses {
		if c.Direct {
			direct = append(direct, c)
		}
	}
	return direct
}

func isProperNounGloss(defn string) bool {
	lower := strings.ToLower(defn)
	for _, prefix := range properNounPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
