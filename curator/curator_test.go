package curator

import (
	"math/rand"
	"testing"

	"github.com/ashgrove-labs/wordle-puzzle/models"
	"github.com/ashgrove-labs/wordle-puzzle/scoring"
)

func dict(t *testing.T, words ...string) *models.Dictionary {
	t.Helper()
	ws := make([]models.Word, len(words))
	for i, w := range words {
		ws[i] = models.MustWord(w)
	}
	d, err := models.NewDictionary(ws)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	return d
}

func TestBuildSplitsSeventyThirty(t *testing.T) {
	words := []string{
		"crane", "slate", "trace", "grape", "plant", "shake",
		"spend", "briny", "clout", "dwarf",
	}
	d := dict(t, words...)
	ls := scoring.NewLetterStats(d)
	freq := models.EmptyFrequencyTable()
	rng := rand.New(rand.NewSource(1))

	pool := Build(d, ls, freq, rng, 10)
	if len(pool.Words) != 10 {
		t.Fatalf("len(pool.Words) = %d, want 10", len(pool.Words))
	}
	if pool.TopCount != 7 {
		t.Errorf("TopCount = %d, want 7", pool.TopCount)
	}
}

func TestBuildTopIsDescendingByScore(t *testing.T) {
	words := []string{
		"crane", "slate", "trace", "grape", "plant", "shake",
		"spend", "briny", "clout", "dwarf", "mourn", "lathe",
	}
	d := dict(t, words...)
	ls := scoring.NewLetterStats(d)
	freq := models.EmptyFrequencyTable()
	rng := rand.New(rand.NewSource(2))

	pool := Build(d, ls, freq, rng, 10)
	top := pool.Top(7)
	for i := 1; i < len(top); i++ {
		prevScore := scoring.Score(ls, freq, top[i-1])
		curScore := scoring.Score(ls, freq, top[i])
		if curScore > prevScore {
			t.Errorf("top pool not descending at index %d: %v (%v) followed by %v (%v)",
				i, top[i-1], prevScore, top[i], curScore)
		}
	}
}

func TestBuildCapsAtDictionarySize(t *testing.T) {
	d := dict(t, "crane", "slate", "trace")
	ls := scoring.NewLetterStats(d)
	freq := models.EmptyFrequencyTable()
	rng := rand.New(rand.NewSource(3))

	pool := Build(d, ls, freq, rng, 2000)
	if len(pool.Words) != 3 {
		t.Errorf("len(pool.Words) = %d, want 3 (capped to dictionary size)", len(pool.Words))
	}
}

func TestBuildZeroOrNegativeKUsesDefault(t *testing.T) {
	words := make([]string, 0, 26)
	letters := "abcdefghijklmnopqrstuvwxyz"
	for i := 0; i+5 <= len(letters); i++ {
		words = append(words, letters[i:i+5])
	}
	d := dict(t, words...)
	ls := scoring.NewLetterStats(d)
	freq := models.EmptyFrequencyTable()
	rng := rand.New(rand.NewSource(4))

	pool := Build(d, ls, freq, rng, 0)
	if len(pool.Words) != d.Len() {
		t.Errorf("len(pool.Words) = %d, want %d (default exceeds dictionary size, so capped)", len(pool.Words), d.Len())
	}
}

func TestTopNeverExceedsTopCount(t *testing.T) {
	d := dict(t, "crane", "slate", "trace", "grape", "plant")
	ls := scoring.NewLetterStats(d)
	freq := models.EmptyFrequencyTable()
	rng := rand.New(rand.NewSource(5))

	pool := Build(d, ls, freq, rng, 5)
	top := pool.Top(100)
	if len(top) != pool.TopCount {
		t.Errorf("Top(100) returned %d words, want capped at TopCount=%d", len(top), pool.TopCount)
	}
}
