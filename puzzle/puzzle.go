// Package puzzle is the thin façade exposing generate, feedback, and
// filter_dictionary to the external request layer, wrapping the
// Search Driver, Feedback Oracle, and Constraint Filter behind one
// entry point.
package puzzle

import (
	"sort"

	"github.com/ashgrove-labs/wordle-puzzle/feedback"
	"github.com/ashgrove-labs/wordle-puzzle/filter"
	"github.com/ashgrove-labs/wordle-puzzle/models"
	"github.com/ashgrove-labs/wordle-puzzle/search"
)

// Service bundles a Dictionary, FrequencyTable, and Search Driver
// behind generate/feedback/filter_dictionary. It owns no per-request
// state; each Generate call builds its own search.Generator so that
// concurrent callers never share RNG or cache state.
type Service struct {
	dict   *models.Dictionary
	freq   *models.FrequencyTable
	config search.Config
}

// NewService builds a Service over dict and freq with the given
// Search Driver configuration.
func NewService(dict *models.Dictionary, freq *models.FrequencyTable, config search.Config) *Service {
	return &Service{dict: dict, freq: freq, config: config}
}

// Generate builds a puzzle for answer (or a selected one, if answer
// is nil), trying up to the configured MaxAttempts times. seed makes
// the call reproducible; pass a caller-chosen integer for determinism,
// or a time-derived value upstream of this call for variety — the
// core itself never calls time.Now, so every source of randomness
// traces back to seed.
func (s *Service) Generate(answer *models.Word, seed int64) (*models.Puzzle, error) {
	gen, err := search.NewGenerator(s.dict, s.freq, seed, s.config)
	if err != nil {
		return nil, err
	}
	return gen.Generate(answer)
}

// Feedback computes the color pattern guess produces against answer.
func (s *Service) Feedback(guess, answer models.Word) models.ColorPattern {
	return feedback.Get(guess, answer)
}

// FilterDictionary narrows the dictionary by records and returns the
// surviving candidates as a sorted list (lex order) for deterministic
// client display.
func (s *Service) FilterDictionary(records []models.GuessRecord) []models.Word {
	result := filter.Filter(s.dict, records)
	words := result.Words()
	sort.Slice(words, func(i, j int) bool {
		return words[i].String() < words[j].String()
	})
	return words
}
