// Package scoring implements the Scoring Engine: per-letter and
// per-position letter statistics over a Dictionary, a frequency-
// boosted word score, and the per-guess composite score the Search
// Driver uses to rank candidate guesses.
package scoring

import "github.com/ashgrove-labs/wordle-puzzle/models"

// LetterStats holds per-letter and per-letter-per-position
// frequencies derived once from a Dictionary. Both are normalized by
// dictionary size; absolute scale doesn't matter, only ordering.
type LetterStats struct {
	letterFreq [models.NumLetters]float64
	posFreq    [models.NumLetters][models.WordLength]float64
}

// NewLetterStats computes LetterStats over dict. An empty dictionary
// yields a LetterStats of all zeros rather than erroring, since
// dictionary non-emptiness is validated at construction time by
// models.NewDictionary.
func NewLetterStats(dict *models.Dictionary) *LetterStats {
	var ls LetterStats
	n := dict.Len()
	if n == 0 {
		return &ls
	}

	for id := 0; id < n; id++ {
		w := dict.Word(id)
		seen := w.UniqueLetters()
		for l := 0; l < models.NumLetters; l++ {
			if seen&(1<<uint(l)) != 0 {
				ls.letterFreq[l]++
			}
		}
		for i := 0; i < models.WordLength; i++ {
			ls.posFreq[w.At(i)-'a'][i]++
		}
	}

	total := float64(n)
	for l := 0; l < models.NumLetters; l++ {
		ls.letterFreq[l] /= total
		for i := 0; i < models.WordLength; i++ {
			ls.posFreq[l][i] /= total
		}
	}
	return &ls
}

// LetterFreq returns the fraction of dictionary words containing
// letter (a lowercase byte 'a'..'z').
func (ls *LetterStats) LetterFreq(letter byte) float64 {
	return ls.letterFreq[letter-'a']
}

// PosFreq returns the fraction of dictionary words with letter at
// position i.
func (ls *LetterStats) PosFreq(letter byte, i int) float64 {
	return ls.posFreq[letter-'a'][i]
}

// Base computes a position-and-frequency score for w: position
// frequency weighted 2x, plus one letter-frequency credit per unique
// letter (so a repeated letter is never double-credited).
func (ls *LetterStats) Base(w models.Word) float64 {
	var sum float64
	for i := 0; i < models.WordLength; i++ {
		sum += 2 * ls.PosFreq(w.At(i), i)
	}
	seen := w.UniqueLetters()
	for l := 0; l < models.NumLetters; l++ {
		if seen&(1<<uint(l)) != 0 {
			sum += ls.letterFreq[l]
		}
	}
	return sum
}

// boostBeta is the word-frequency boost coefficient. It has no
// principled derivation, so it is kept here as a single named
// constant rather than threaded through every call site.
const boostBeta = 0.5

// Score computes score(w) = base(w) * (1 + β * min(F(w)/100, 10)),
// the word-frequency-boosted score. Words absent from freq (F=0) get
// a boost factor of exactly 1.
func Score(ls *LetterStats, freq *models.FrequencyTable, w models.Word) float64 {
	f := freq.Get(w)
	ratio := f / 100
	if ratio > 10 {
		ratio = 10
	}
	return ls.Base(w) * (1 + boostBeta*ratio)
}

// Weights holds the composite-score coefficients. They have no
// principled derivation, so they stay configurable rather than baked
// into the scoring function.
type Weights struct {
	InfoGain  float64
	Green     float64
	Yellow    float64
	FreqBonus float64
	Diversity float64
}

// DefaultWeights are the tuned default coefficients for the composite
// score: 20·info_gain + 5·green + 2·yellow + 100·freq_bonus −
// 20·diversity.
func DefaultWeights() Weights {
	return Weights{
		InfoGain:  20,
		Green:     5,
		Yellow:    2,
		FreqBonus: 100,
		Diversity: 20,
	}
}

// Composite computes the per-guess composite score used to rank
// candidate guesses. prevCount and newCount are the candidate-set
// sizes before and after guess g; pattern is feedback(g, answer);
// usedLetters is the union of letter bitmasks of every guess already
// chosen this attempt.
func Composite(w Weights, ls *LetterStats, freq *models.FrequencyTable, g models.Word, pattern models.ColorPattern, prevCount, newCount int, usedLetters uint32) float64 {
	infoGain := float64(prevCount - newCount)

	var green, yellow int
	for _, c := range pattern {
		switch c {
		case models.Green:
			green++
		case models.Yellow:
			yellow++
		}
	}
	constraintScore := w.Green*float64(green) + w.Yellow*float64(yellow)

	freqBonus := w.FreqBonus * Score(ls, freq, g)

	overlap := popcount32(g.UniqueLetters() & usedLetters)
	diversityPen := w.Diversity * float64(overlap)

	return w.InfoGain*infoGain + constraintScore + freqBonus - diversityPen
}

func popcount32(x uint32) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}
