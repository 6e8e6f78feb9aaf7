package wordlist

import (
	"github.com/heartmarshall/wordjourney-tools/internal/domain"
)

// DailyLengths are the word lengths eligible for the daily challenge.
var DailyLengths = []string{"4", "5", "6"}

// PoolStats holds pool construction counts for logging.
type PoolStats struct {
	ValidCandidates int // non-empty words seen in the eligible buckets
	LevelWords      int // distinct excluded level words
	PoolSize        int
}

// BuildDailyPool returns the daily challenge pool: every valid word of an
// eligible length that is not used as a level word, uppercased. Level
// words from ALL buckets are excluded, not only the eligible lengths.
// A missing length bucket contributes nothing. The same inputs always
// produce the same pool.
func BuildDailyPool(valid Buckets, levels LevelBuckets) (map[string]bool, PoolStats) {
	excluded := make(map[string]bool)
	for _, items := range levels {
		for _, lw := range items {
			if w := domain.GameWord(lw.Word); w != "" {
				excluded[w] = true
			}
		}
	}

	pool := make(map[string]bool)
	var stats PoolStats
	for _, length := range DailyLengths {
		for _, w := range valid[length] {
			uw := domain.GameWord(w)
			if uw == "" {
				continue
			}
			stats.ValidCandidates++
			if !excluded[uw] {
				pool[uw] = true
			}
		}
	}

	stats.LevelWords = len(excluded)
	stats.PoolSize = len(pool)
	return pool, stats
}
