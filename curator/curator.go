// Package curator builds the Curator's working pool: a subset of the
// dictionary biased toward high-scoring, informative words, plus a
// small randomized tail for diversity.
package curator

import (
	"math/rand"
	"sort"

	"github.com/ashgrove-labs/wordle-puzzle/models"
	"github.com/ashgrove-labs/wordle-puzzle/scoring"
)

// DefaultPoolSize is the default working pool size.
const DefaultPoolSize = 2000

// Pool is the curator's working subset: the first TopCount entries
// are the highest-scored words in descending score order (equal
// scores ordered by ascending dictionary id), and the
// remainder is an unordered random sample of the rest of the
// dictionary.
type Pool struct {
	Words    []models.Word
	TopCount int
}

// Build constructs a Pool of size k (default DefaultPoolSize when
// k <= 0): the top 70% by score(·), descending and deterministic,
// plus a uniform-without-replacement 30% sample of the remainder
// drawn from rng. The full dictionary is unaffected; callers still
// filter against it directly.
func Build(dict *models.Dictionary, ls *scoring.LetterStats, freq *models.FrequencyTable, rng *rand.Rand, k int) *Pool {
	if k <= 0 {
		k = DefaultPoolSize
	}
	n := dict.Len()
	if k > n {
		k = n
	}

	topCount := (k * 7) / 10
	tailCount := k - topCount

	type scored struct {
		id    int
		score float64
	}
	all := make([]scored, n)
	for id := 0; id < n; id++ {
		all[id] = scored{id: id, score: scoring.Score(ls, freq, dict.Word(id))}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		// Break ties by id so the top slice is reproducible
		// regardless of sort stability guarantees.
		return all[i].id < all[j].id
	})

	top := make([]int, topCount)
	taken := make(map[int]bool, topCount)
	for i := 0; i < topCount; i++ {
		top[i] = all[i].id
		taken[all[i].id] = true
	}

	remaining := make([]int, 0, n-topCount)
	for i := topCount; i < len(all); i++ {
		remaining = append(remaining, all[i].id)
	}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	if tailCount > len(remaining) {
		tailCount = len(remaining)
	}
	tail := remaining[:tailCount]

	words := make([]models.Word, 0, topCount+tailCount)
	for _, id := range top {
		words = append(words, dict.Word(id))
	}
	for _, id := range tail {
		words = append(words, dict.Word(id))
	}

	return &Pool{Words: words, TopCount: topCount}
}

// Top returns the deterministic top-scored prefix of the pool, up to
// n words (fewer if the pool's top section is smaller).
func (p *Pool) Top(n int) []models.Word {
	if n > p.TopCount {
		n = p.TopCount
	}
	return p.Words[:n]
}
