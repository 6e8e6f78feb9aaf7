// Package inspect builds a quick QA view over the curated level words,
// so a designer can eyeball bucket sizes and definitions without opening
// the raw JSON.
package inspect

import (
	"slices"

	"github.com/heartmarshall/wordjourney-tools/internal/wordlist"
)

// lengthOrder is the expected bucket layout of the level-word asset.
var lengthOrder = []string{"3", "4", "5", "6", "7"}

const (
	defaultSampleN = 5
	maxDefRunes    = 60
)

// Sample is one previewed level word.
type Sample struct {
	Word       string
	Definition string
}

// BucketSummary describes one length bucket of the level-word list.
type BucketSummary struct {
	Length  string
	Count   int
	Samples []Sample
	More    int // entries beyond the sampled ones
}

// Summarize builds per-bucket summaries in length order ("3".."7",
// then any unexpected keys, sorted). At most sampleN entries per bucket
// are previewed, keeping the curated file order; definitions are
// truncated for display. A sampleN of zero or less falls back to the
// default of 5.
func Summarize(lists wordlist.LevelBuckets, sampleN int) []BucketSummary {
	if sampleN <= 0 {
		sampleN = defaultSampleN
	}

	keys := make([]string, 0, len(lists))
	for _, k := range lengthOrder {
		if _, ok := lists[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range lists {
		if !slices.Contains(lengthOrder, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	keys = append(keys, extra...)

	sums := make([]BucketSummary, 0, len(keys))
	for _, k := range keys {
		entries := lists[k]
		sum := BucketSummary{Length: k, Count: len(entries)}
		for i, lw := range entries {
			if i == sampleN {
				sum.More = len(entries) - sampleN
				break
			}
			sum.Samples = append(sum.Samples, Sample{
				Word:       lw.Word,
				Definition: truncateDefinition(lw.Definition, maxDefRunes),
			})
		}
		sums = append(sums, sum)
	}
	return sums
}

// truncateDefinition truncates s to maxLen runes. If truncation occurs,
// an ellipsis character is appended after the truncated text.
func truncateDefinition(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "…"
}
