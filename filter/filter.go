// Package filter implements the constraint filter: narrowing a
// candidate set of dictionary words down to those consistent with an
// accumulated list of (guess, pattern) records.
//
// Candidate sets are backed by github.com/RoaringBitmap/roaring, a
// compressed bitmap built for fast set intersection — a CandidateSet
// is conceptually exactly that: a set of dictionary ids that shrinks
// (via AND) every time a new constraint is applied.
package filter

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ashgrove-labs/wordle-puzzle/feedback"
	"github.com/ashgrove-labs/wordle-puzzle/models"
)

// CandidateSet is a subset of a Dictionary's word ids: the words still
// consistent with every guess record applied so far.
type CandidateSet struct {
	dict *models.Dictionary
	bm   *roaring.Bitmap
}

// Full returns a CandidateSet containing every word in dict.
func Full(dict *models.Dictionary) *CandidateSet {
	bm := roaring.New()
	bm.AddRange(0, uint64(dict.Len()))
	return &CandidateSet{dict: dict, bm: bm}
}

// Cardinality returns the number of surviving candidates.
func (c *CandidateSet) Cardinality() int {
	return int(c.bm.GetCardinality())
}

// Contains reports whether w survives in c. w must be a dictionary
// member; words outside the dictionary are never candidates.
func (c *CandidateSet) Contains(w models.Word) bool {
	id, ok := c.dict.IDOf(w)
	if !ok {
		return false
	}
	return c.bm.Contains(uint32(id))
}

// Words returns the surviving candidates in ascending id (load) order.
func (c *CandidateSet) Words() []models.Word {
	out := make([]models.Word, 0, c.Cardinality())
	it := c.bm.Iterator()
	for it.HasNext() {
		out = append(out, c.dict.Word(int(it.Next())))
	}
	return out
}

// clone returns a deep copy so narrowing never mutates a set another
// attempt or caller still holds a reference to.
func (c *CandidateSet) clone() *CandidateSet {
	return &CandidateSet{dict: c.dict, bm: c.bm.Clone()}
}

// compiledRecord is a GuessRecord pre-processed into a decomposed
// per-letter form: for every letter L, req(L) is the number of
// greens-or-yellows of L in the pattern, and capped(L) is whether some
// gray position also names L (meaning the answer contains exactly
// req(L) copies of L, no more).
type compiledRecord struct {
	rec    models.GuessRecord
	req    [models.NumLetters]uint8
	capped [models.NumLetters]bool
}

func compile(rec models.GuessRecord) compiledRecord {
	var cr compiledRecord
	cr.rec = rec

	for i := 0; i < models.WordLength; i++ {
		if rec.Pattern[i] == models.Green || rec.Pattern[i] == models.Yellow {
			cr.req[rec.Guess.At(i)-'a']++
		}
	}
	var grayed [models.NumLetters]bool
	for i := 0; i < models.WordLength; i++ {
		if rec.Pattern[i] == models.Gray {
			grayed[rec.Guess.At(i)-'a'] = true
		}
	}
	for l := 0; l < models.NumLetters; l++ {
		cr.capped[l] = grayed[l] && cr.req[l] > 0
	}
	return cr
}

// satisfiesCompiled checks w against a pre-compiled record using the
// decomposed, per-letter form: the same check Apply runs against
// every surviving candidate, so it avoids recomputing feedback for
// each one.
func satisfiesCompiled(w models.Word, cr compiledRecord) bool {
	for i := 0; i < models.WordLength; i++ {
		letter := cr.rec.Guess.At(i)
		idx := letter - 'a'
		switch cr.rec.Pattern[i] {
		case models.Green:
			if w.At(i) != letter {
				return false
			}
		case models.Yellow:
			if w.At(i) == letter {
				return false
			}
			if w.Count(letter) < cr.req[idx] {
				return false
			}
		case models.Gray:
			if w.At(i) == letter {
				return false
			}
			if cr.capped[idx] {
				if w.Count(letter) != cr.req[idx] {
					return false
				}
			} else if w.Count(letter) != 0 {
				return false
			}
		}
	}
	return true
}

// Satisfies reports whether w is consistent with rec, i.e. whether w
// could be the answer that produced rec's pattern for rec's guess. It
// recomputes feedback for (rec.Guess, w) directly rather than running
// the decomposed per-letter check Apply uses, so tests can assert the
// two independently-derived notions of "consistent" always agree.
func Satisfies(w models.Word, rec models.GuessRecord) bool {
	return feedback.Get(rec.Guess, w) == rec.Pattern
}

// Apply narrows c by a single new guess record, returning the subset
// of c consistent with it. c itself is left unmodified.
func Apply(c *CandidateSet, rec models.GuessRecord) *CandidateSet {
	// An empty set has nothing left to narrow.
	if c.Cardinality() == 0 {
		return c.clone()
	}

	cr := compile(rec)
	next := roaring.New()
	it := c.bm.Iterator()
	for it.HasNext() {
		id := it.Next()
		if satisfiesCompiled(c.dict.Word(int(id)), cr) {
			next.Add(id)
		}
	}
	return &CandidateSet{dict: c.dict, bm: next}
}

// ApplyAll narrows c by every record in recs, in order, short-
// circuiting as soon as the set becomes empty.
func ApplyAll(c *CandidateSet, recs []models.GuessRecord) *CandidateSet {
	cur := c
	for _, rec := range recs {
		cur = Apply(cur, rec)
		if cur.Cardinality() == 0 {
			break
		}
	}
	return cur
}

// Filter computes the subset of dict consistent with every record in
// recs, starting from the full dictionary.
func Filter(dict *models.Dictionary, recs []models.GuessRecord) *CandidateSet {
	return ApplyAll(Full(dict), recs)
}

// Cache wraps Apply with an LRU of recently computed narrowings, keyed
// on the input CandidateSet's bitmap bytes together with the guess
// record rather than on any word list. Safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	cache *lru.Cache[cacheKey, *CandidateSet]
}

type cacheKey [16]byte

// NewCache builds a Cache holding up to size recent narrowings.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[cacheKey, *CandidateSet](size)
	if err != nil {
		return nil, fmt.Errorf("filter: building cache: %w", err)
	}
	return &Cache{cache: c}, nil
}

// Apply narrows c by rec, serving a cached result when c and rec have
// been seen together before.
func (fc *Cache) Apply(c *CandidateSet, rec models.GuessRecord) *CandidateSet {
	key := cacheKeyFor(c, rec)

	fc.mu.Lock()
	if hit, ok := fc.cache.Get(key); ok {
		fc.mu.Unlock()
		return hit.clone()
	}
	fc.mu.Unlock()

	result := Apply(c, rec)

	fc.mu.Lock()
	fc.cache.Add(key, result)
	fc.mu.Unlock()

	return result.clone()
}

// cacheKeyFor hashes the candidate bitmap's serialized bytes together
// with the guess record, so identical (set, record) pairs collide
// regardless of the path that produced the set.
func cacheKeyFor(c *CandidateSet, rec models.GuessRecord) cacheKey {
	h := md5.New()
	buf, _ := c.bm.ToBytes()
	h.Write(buf)
	h.Write([]byte(rec.Guess.String()))
	var packed [2]byte
	binary.BigEndian.PutUint16(packed[:], rec.Pattern.Pack())
	h.Write(packed[:])

	var key cacheKey
	copy(key[:], h.Sum(nil))
	return key
}
