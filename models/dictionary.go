package models

import "fmt"

// Dictionary is the fixed, ordered set of words the generator draws
// answers and guesses from. Load order is preserved so that anything
// derived from a Dictionary — ids, the curator pool, pool-order
// tie-breaks in the search driver — stays deterministic across runs.
//
// A Dictionary is immutable after construction and safe to share
// read-only across goroutines.
type Dictionary struct {
	words []Word
	index map[Word]int
}

// NewDictionary builds a Dictionary from an ordered list of words.
// Duplicate words keep their first occurrence's id; later duplicates
// are dropped, matching the invariant that every dictionary id names a
// distinct word.
func NewDictionary(words []Word) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("models: dictionary must contain at least one word")
	}
	d := &Dictionary{
		words: make([]Word, 0, len(words)),
		index: make(map[Word]int, len(words)),
	}
	for _, w := range words {
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	return d, nil
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int { return len(d.words) }

// Word returns the word assigned to id. Callers must only pass ids in
// [0, Len()); this is an internal lookup, not a validated boundary.
func (d *Dictionary) Word(id int) Word { return d.words[id] }

// IDOf returns the dictionary id for w, or false if w is not a member.
func (d *Dictionary) IDOf(w Word) (int, bool) {
	id, ok := d.index[w]
	return id, ok
}

// Contains reports whether w is a dictionary member.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.index[w]
	return ok
}

// Words returns a copy of the ordered word list. Callers that only
// need to iterate should prefer Len/Word to avoid the allocation.
func (d *Dictionary) Words() []Word {
	out := make([]Word, len(d.words))
	copy(out, d.words)
	return out
}

// FrequencyTable maps a Word to a non-negative external frequency.
// Words absent from the table map to a configured default: zero
// unless a positive floor was supplied at construction.
type FrequencyTable struct {
	freq   map[Word]float64
	dfault float64
}

// NewFrequencyTable builds a FrequencyTable from parsed (word, freq)
// pairs. Negative frequencies are rejected; a missing or empty file at
// the collaborator layer should simply supply no entries here, which
// this type already treats as "every word maps to dfault".
func NewFrequencyTable(entries map[Word]float64, dfault float64) (*FrequencyTable, error) {
	if dfault < 0 {
		return nil, fmt.Errorf("models: frequency default must be non-negative, got %v", dfault)
	}
	ft := &FrequencyTable{
		freq:   make(map[Word]float64, len(entries)),
		dfault: dfault,
	}
	for w, f := range entries {
		if f < 0 {
			return nil, fmt.Errorf("models: frequency for %q must be non-negative, got %v", w, f)
		}
		ft.freq[w] = f
	}
	return ft, nil
}

// EmptyFrequencyTable returns a table with no entries at all; every
// word resolves to the zero default, so every boost factor collapses
// to 1.
func EmptyFrequencyTable() *FrequencyTable {
	return &FrequencyTable{freq: map[Word]float64{}, dfault: 0}
}

// Get returns the frequency for w, falling back to the table's
// default when w has no entry.
func (ft *FrequencyTable) Get(w Word) float64 {
	if f, ok := ft.freq[w]; ok {
		return f
	}
	return ft.dfault
}

// Len returns the number of words with an explicit frequency entry.
func (ft *FrequencyTable) Len() int { return len(ft.freq) }
