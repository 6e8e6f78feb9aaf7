package inspect

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/heartmarshall/wordjourney-tools/internal/wordlist"
)

func TestSummarize_BucketOrder(t *testing.T) {
	t.Parallel()

	lists := wordlist.LevelBuckets{
		"5":  {{Word: "crane"}},
		"3":  {{Word: "ace"}},
		"12": {{Word: "whippoorwill"}},
		"9":  {{Word: "harmonica"}},
	}

	sums := Summarize(lists, 5)

	var got []string
	for _, s := range sums {
		got = append(got, s.Length)
	}
	want := []string{"3", "5", "12", "9"}
	if len(got) != len(want) {
		t.Fatalf("Summarize returned %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummarize_SampleLimit(t *testing.T) {
	t.Parallel()

	var entries []wordlist.LevelWord
	for i := 0; i < 7; i++ {
		entries = append(entries, wordlist.LevelWord{Word: fmt.Sprintf("word%d", i)})
	}
	sums := Summarize(wordlist.LevelBuckets{"4": entries}, 5)

	if len(sums) != 1 {
		t.Fatalf("Summarize returned %d buckets, want 1", len(sums))
	}
	if sums[0].Count != 7 {
		t.Errorf("Count = %d, want 7", sums[0].Count)
	}
	if len(sums[0].Samples) != 5 {
		t.Errorf("len(Samples) = %d, want 5", len(sums[0].Samples))
	}
	if sums[0].More != 2 {
		t.Errorf("More = %d, want 2", sums[0].More)
	}
}

func TestSummarize_DefaultSampleN(t *testing.T) {
	t.Parallel()

	var entries []wordlist.LevelWord
	for i := 0; i < 6; i++ {
		entries = append(entries, wordlist.LevelWord{Word: fmt.Sprintf("word%d", i)})
	}
	sums := Summarize(wordlist.LevelBuckets{"4": entries}, 0)

	if len(sums[0].Samples) != 5 {
		t.Errorf("len(Samples) = %d, want default of 5", len(sums[0].Samples))
	}
	if sums[0].More != 1 {
		t.Errorf("More = %d, want 1", sums[0].More)
	}
}

func TestSummarize_KeepsFileOrder(t *testing.T) {
	t.Parallel()

	lists := wordlist.LevelBuckets{
		"4": {
			{Word: "glow", Definition: "light produced by heat"},
			{Word: "bird", Definition: "warm-blooded egg-laying vertebrate"},
		},
	}
	sums := Summarize(lists, 5)

	if sums[0].Samples[0].Word != "glow" || sums[0].Samples[1].Word != "bird" {
		t.Errorf("samples out of order: %+v", sums[0].Samples)
	}
	if sums[0].Samples[0].Definition != "light produced by heat" {
		t.Errorf("Definition = %q, want untruncated original", sums[0].Samples[0].Definition)
	}
}

func TestSummarize_EmptyBucket(t *testing.T) {
	t.Parallel()

	sums := Summarize(wordlist.LevelBuckets{"3": {}}, 5)

	if len(sums) != 1 {
		t.Fatalf("Summarize returned %d buckets, want 1", len(sums))
	}
	if sums[0].Count != 0 || len(sums[0].Samples) != 0 || sums[0].More != 0 {
		t.Errorf("empty bucket summary = %+v, want zero counts", sums[0])
	}
}

func TestTruncateDefinition(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 61)
	multibyte := strings.Repeat("é", 61)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "a cause for feeling concern", "a cause for feeling concern"},
		{"exact limit", strings.Repeat("a", 60), strings.Repeat("a", 60)},
		{"over limit", long, strings.Repeat("a", 60) + "…"},
		{"multibyte runes", multibyte, strings.Repeat("é", 60) + "…"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateDefinition(tt.in, maxDefRunes); got != tt.want {
				t.Errorf("truncateDefinition(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- RenderTable ---

func TestRenderTable(t *testing.T) {
	t.Parallel()

	sums := []BucketSummary{
		{
			Length: "4",
			Count:  7,
			Samples: []Sample{
				{Word: "glow", Definition: "light produced by heat"},
				{Word: "bird", Definition: "warm-blooded egg-laying vertebrate"},
			},
			More: 5,
		},
	}

	var buf bytes.Buffer
	RenderTable(&buf, sums)
	out := buf.String()

	if !strings.Contains(strings.ToUpper(out), "LENGTH") {
		t.Errorf("table output missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "glow") || !strings.Contains(out, "bird") {
		t.Errorf("table output missing sample words, got:\n%s", out)
	}
	if !strings.Contains(out, "… and 5 more") {
		t.Errorf("table output missing overflow row, got:\n%s", out)
	}
}

func TestRenderTable_EmptyBucket(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	RenderTable(&buf, []BucketSummary{{Length: "7", Count: 0}})

	if !strings.Contains(buf.String(), "7") {
		t.Errorf("table output missing empty bucket row, got:\n%s", buf.String())
	}
}
