// Package search implements the Search Driver: a greedy, randomized,
// restartable loop that picks four guesses per attempt, tracks the
// best result across attempts, and returns a finished Puzzle.
package search

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ashgrove-labs/wordle-puzzle/curator"
	"github.com/ashgrove-labs/wordle-puzzle/feedback"
	"github.com/ashgrove-labs/wordle-puzzle/filter"
	"github.com/ashgrove-labs/wordle-puzzle/models"
	"github.com/ashgrove-labs/wordle-puzzle/scoring"
)

// State names a stage of the per-attempt guessing state machine.
type State int

const (
	Empty State = iota
	Picking1
	Picking2
	Picking3
	Picking4
	Solved
	Ambiguous
	Aborted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Picking1:
		return "picking_1"
	case Picking2:
		return "picking_2"
	case Picking3:
		return "picking_3"
	case Picking4:
		return "picking_4"
	case Solved:
		return "solved"
	case Ambiguous:
		return "ambiguous"
	default:
		return "aborted"
	}
}

// PreconditionViolation reports a caller error the core refuses to
// paper over: an empty dictionary, a caller-supplied answer absent
// from the dictionary, or an answer that isn't five lowercase letters.
// It is surfaced to the caller; the core attempts no recovery.
type PreconditionViolation struct {
	Reason string
}

func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("search: precondition violation: %s", e.Reason)
}

// Config holds the Search Driver's tunable parameters. These values
// have no principled derivation, so each is exposed here rather than
// hardcoded, and can be retuned without touching the search logic.
type Config struct {
	MaxAttempts int
	PoolSize    int
	// InfoGainThreshold is the minimum fractional candidate-set
	// reduction a guess after the first must achieve to avoid being
	// pruned. The prune is skipped once only the answer remains, so
	// the remaining guess slots can still be filled.
	InfoGainThreshold float64
	// AnswerFloor is the default θ floor (in F-units) used for answer
	// selection when the dictionary's 20th-percentile frequency
	// can't be computed (no words with F > 0).
	AnswerFloor float64
	Weights     scoring.Weights
}

// DefaultConfig returns the tuned default parameters the generator
// uses unless overridden.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:       500,
		PoolSize:          curator.DefaultPoolSize,
		InfoGainThreshold: 0.1,
		AnswerFloor:       0.1,
		Weights:           scoring.DefaultWeights(),
	}
}

// Generator owns every immutable-after-init resource the search
// needs (Dictionary, LetterStats, FrequencyTable, Curator pool) plus
// its own RNG. The RNG is a mutable field, so concurrent Generate
// calls on one Generator are NOT safe; build one Generator per
// goroutine if you need concurrency.
type Generator struct {
	dict   *models.Dictionary
	freq   *models.FrequencyTable
	stats  *scoring.LetterStats
	pool   *curator.Pool
	rng    *rand.Rand
	config Config
}

// NewGenerator builds a Generator over dict and freq, seeded by seed.
// Returns a PreconditionViolation if dict is empty.
func NewGenerator(dict *models.Dictionary, freq *models.FrequencyTable, seed int64, config Config) (*Generator, error) {
	if dict.Len() == 0 {
		return nil, &PreconditionViolation{Reason: "dictionary is empty"}
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if config.InfoGainThreshold == 0 {
		config.InfoGainThreshold = DefaultConfig().InfoGainThreshold
	}
	if config.AnswerFloor == 0 {
		config.AnswerFloor = DefaultConfig().AnswerFloor
	}

	rng := rand.New(rand.NewSource(seed))
	stats := scoring.NewLetterStats(dict)
	pool := curator.Build(dict, stats, freq, rng, config.PoolSize)

	return &Generator{
		dict:   dict,
		freq:   freq,
		stats:  stats,
		pool:   pool,
		rng:    rng,
		config: config,
	}, nil
}

// SelectAnswer picks a candidate answer weighted toward common words:
// the pool is every word at or above the 20th-percentile frequency
// (by word count) among words with F > 0, or the configured floor if
// that can't be computed; sampling within the pool is weighted by
// F(w)+1.
func (g *Generator) SelectAnswer() models.Word {
	n := g.dict.Len()
	withFreq := make([]float64, 0, n)
	for id := 0; id < n; id++ {
		f := g.freq.Get(g.dict.Word(id))
		if f > 0 {
			withFreq = append(withFreq, f)
		}
	}

	theta := g.config.AnswerFloor
	if len(withFreq) > 0 {
		sort.Float64s(withFreq)
		idx := (len(withFreq) * 20) / 100
		if idx >= len(withFreq) {
			idx = len(withFreq) - 1
		}
		theta = withFreq[idx]
	}

	poolIDs := make([]int, 0, n)
	for id := 0; id < n; id++ {
		if g.freq.Get(g.dict.Word(id)) >= theta {
			poolIDs = append(poolIDs, id)
		}
	}
	if len(poolIDs) == 0 {
		for id := 0; id < n; id++ {
			poolIDs = append(poolIDs, id)
		}
	}

	var total float64
	weights := make([]float64, len(poolIDs))
	for i, id := range poolIDs {
		w := g.freq.Get(g.dict.Word(id)) + 1
		weights[i] = w
		total += w
	}

	r := g.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return g.dict.Word(poolIDs[i])
		}
		r -= w
	}
	return g.dict.Word(poolIDs[len(poolIDs)-1])
}

// attempt is the per-attempt scratch state: a guess list, the
// running candidate set, and used-letters bitmask.
type attempt struct {
	guesses     []models.GuessRecord
	guessIDs    []int
	usedLetters uint32
	candidates  *filter.CandidateSet
	cache       map[tupleKey]*filter.CandidateSet
}

// tupleKey is a fixed-size, map-friendly cache key over up to four
// sorted word ids, padded with -1.
type tupleKey [4]int32

func tupleKeyFor(ids []int) tupleKey {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	var k tupleKey
	for i := range k {
		k[i] = -1
	}
	for i, id := range sorted {
		if i >= len(k) {
			break
		}
		k[i] = int32(id)
	}
	return k
}

// candidatesAfter returns the candidate set after adding guessID to
// a.guessIDs, using a's per-attempt memoization cache keyed by the
// sorted tuple of chosen-guesses-plus-g.
func (a *attempt) candidatesAfter(dict *models.Dictionary, answer models.Word, guessID int) *filter.CandidateSet {
	tupleIDs := append(append([]int(nil), a.guessIDs...), guessID)
	key := tupleKeyFor(tupleIDs)
	if hit, ok := a.cache[key]; ok {
		return hit
	}

	recs := make([]models.GuessRecord, len(tupleIDs))
	for i, id := range tupleIDs {
		w := dict.Word(id)
		recs[i] = models.GuessRecord{Guess: w, Pattern: feedback.Get(w, answer)}
	}
	result := filter.Filter(dict, recs)
	a.cache[key] = result
	return result
}

// poolFor chooses the per-attempt candidate pool: the curator's
// deterministic top 300 for the first half of attempts, else a fresh
// random sample of up to 400 words.
func (g *Generator) poolFor(attemptNum int) []models.Word {
	if attemptNum < g.config.MaxAttempts/2 {
		return g.pool.Top(300)
	}

	n := g.dict.Len()
	size := 400
	if size > n {
		size = n
	}
	perm := g.rng.Perm(n)[:size]
	out := make([]models.Word, size)
	for i, id := range perm {
		out[i] = g.dict.Word(id)
	}
	return out
}

// restrictNarrow implements the optional early-narrowing step: when
// the candidate set has shrunk below 10, restrict the pool to its
// intersection with the remaining candidates, padded with high-score
// fillers from the curator's top pool, excluding the answer.
func restrictNarrow(pool []models.Word, candidates *filter.CandidateSet, fillers []models.Word, answer models.Word) []models.Word {
	inCandidates := make(map[models.Word]bool, candidates.Cardinality())
	for _, w := range candidates.Words() {
		inCandidates[w] = true
	}

	restricted := make([]models.Word, 0, len(pool))
	seen := make(map[models.Word]bool, len(pool))
	for _, w := range pool {
		if inCandidates[w] && w != answer {
			restricted = append(restricted, w)
			seen[w] = true
		}
	}
	for _, w := range fillers {
		if w == answer || seen[w] {
			continue
		}
		restricted = append(restricted, w)
		seen[w] = true
	}
	return restricted
}

// Generate runs the full restartable search and returns a Puzzle. If
// answer is nil, one is selected via SelectAnswer. Returns a
// PreconditionViolation if a caller-supplied answer isn't a
// dictionary member.
func (g *Generator) Generate(answer *models.Word) (*models.Puzzle, error) {
	var a models.Word
	if answer != nil {
		if !g.dict.Contains(*answer) {
			return nil, &PreconditionViolation{Reason: "supplied answer is not a dictionary member"}
		}
		a = *answer
	} else {
		a = g.SelectAnswer()
	}

	var bestGuesses []models.GuessRecord
	bestRemaining := g.dict.Len() + 1

	for attemptNum := 0; attemptNum < g.config.MaxAttempts; attemptNum++ {
		pool := g.poolFor(attemptNum)
		chosen := make(map[models.Word]bool, 4)

		at := &attempt{
			candidates: filter.Full(g.dict),
			cache:      make(map[tupleKey]*filter.CandidateSet),
		}

		for guessNum := 1; guessNum <= 4; guessNum++ {
			effectivePool := pool
			if at.candidates.Cardinality() < 10 {
				effectivePool = restrictNarrow(pool, at.candidates, g.pool.Top(50), a)
			}

			type pick struct {
				guess     models.Word
				pattern   models.ColorPattern
				newSet    *filter.CandidateSet
				newCount  int
				composite float64
			}
			var best *pick

			prevCount := at.candidates.Cardinality()

			for _, cand := range effectivePool {
				if cand == a || chosen[cand] {
					continue
				}
				if guessNum == 1 && popcount(cand.UniqueLetters()&at.usedLetters) > 3 {
					continue
				}

				id, ok := g.dict.IDOf(cand)
				if !ok {
					continue
				}
				pattern := feedback.Get(cand, a)
				newSet := at.candidatesAfter(g.dict, a, id)
				newCount := newSet.Cardinality()
				if newCount == 0 {
					// Unreachable in practice: the answer is always a
					// member of its own filtered set.
					continue
				}
				if guessNum > 1 && prevCount > 1 {
					gain := float64(prevCount-newCount) / float64(prevCount)
					if gain < g.config.InfoGainThreshold {
						continue
					}
				}

				composite := scoring.Composite(g.config.Weights, g.stats, g.freq, cand, pattern, prevCount, newCount, at.usedLetters)

				if best == nil ||
					composite > best.composite ||
					(composite == best.composite && newCount < best.newCount) {
					best = &pick{
						guess:     cand,
						pattern:   pattern,
						newSet:    newSet,
						newCount:  newCount,
						composite: composite,
					}
				}
			}

			if best == nil {
				break
			}

			at.guesses = append(at.guesses, models.GuessRecord{Guess: best.guess, Pattern: best.pattern})
			id, _ := g.dict.IDOf(best.guess)
			at.guessIDs = append(at.guessIDs, id)
			at.usedLetters |= best.guess.UniqueLetters()
			at.candidates = best.newSet
			chosen[best.guess] = true
		}

		if len(at.guesses) < 4 {
			continue
		}

		if !at.candidates.Contains(a) {
			panic("search: internal inconsistency: answer missing from its own candidate set")
		}

		remaining := at.candidates.Cardinality()
		if remaining == 1 {
			return puzzleFrom(a, at.guesses, remaining), nil
		}
		if remaining < bestRemaining {
			bestRemaining = remaining
			bestGuesses = at.guesses
		}
	}

	if bestGuesses == nil {
		return nil, &PreconditionViolation{Reason: "dictionary too small to produce four distinct non-answer guesses"}
	}
	return puzzleFrom(a, bestGuesses, bestRemaining), nil
}

func puzzleFrom(answer models.Word, guesses []models.GuessRecord, remaining int) *models.Puzzle {
	var p models.Puzzle
	p.Answer = answer
	copy(p.Guesses[:], guesses)
	p.RemainingCandidates = remaining
	return &p
}

func popcount(x uint32) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}
