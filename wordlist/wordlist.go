// Package wordlist supplies Dictionary and FrequencyTable data to the
// demo entry points. The generator core only ever consumes a parsed
// models.Dictionary/models.FrequencyTable; something still has to hand
// it real data, and this package plays that role the way an external
// request layer would in production.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ashgrove-labs/wordle-puzzle/models"
)

//go:embed default_words.txt
var defaultWords string

// Default returns the Dictionary built from the embedded default word
// list, used when no WORDLIST_FILE is configured.
func Default() (*models.Dictionary, error) {
	words, err := parseWords(strings.NewReader(defaultWords))
	if err != nil {
		return nil, fmt.Errorf("wordlist: parsing embedded default: %w", err)
	}
	return models.NewDictionary(words)
}

// Load builds a Dictionary from path: one lowercase five-letter word
// per line; lines that aren't exactly five a-z letters are rejected
// rather than silently skipped, since a malformed dictionary file is a
// precondition violation on the collaborator.
func Load(path string) (*models.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening %s: %w", path, err)
	}
	defer f.Close()

	words, err := parseWords(f)
	if err != nil {
		return nil, fmt.Errorf("wordlist: parsing %s: %w", path, err)
	}
	return models.NewDictionary(words)
}

func parseWords(r io.Reader) ([]models.Word, error) {
	var words []models.Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		w, err := models.NewWord(line)
		if err != nil {
			return nil, fmt.Errorf("rejected line %q: %w", line, err)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFrequencies builds a FrequencyTable from path: whitespace-
// separated "word frequency" pairs. Words that aren't five letters
// are ignored rather than rejected, matching the file format's
// documented tolerance. A missing path yields an empty table (boost
// factor 1 everywhere).
func LoadFrequencies(path string) (*models.FrequencyTable, error) {
	if path == "" {
		return models.EmptyFrequencyTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.EmptyFrequencyTable(), nil
		}
		return nil, fmt.Errorf("wordlist: opening %s: %w", path, err)
	}
	defer f.Close()

	entries := make(map[models.Word]float64)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		if len(fields[0]) != models.WordLength {
			continue
		}
		w, err := models.NewWord(fields[0])
		if err != nil {
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || freq < 0 {
			continue
		}
		entries[w] = freq
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return models.NewFrequencyTable(entries, 0)
}

// FromEnv loads a Dictionary and FrequencyTable honoring
// WORDLIST_FILE and FREQUENCY_FILE, falling back to the embedded
// default word list and an empty frequency table respectively.
func FromEnv() (*models.Dictionary, *models.FrequencyTable, error) {
	var dict *models.Dictionary
	var err error
	if path := os.Getenv("WORDLIST_FILE"); path != "" {
		dict, err = Load(path)
	} else {
		dict, err = Default()
	}
	if err != nil {
		return nil, nil, err
	}

	freq, err := LoadFrequencies(os.Getenv("FREQUENCY_FILE"))
	if err != nil {
		return nil, nil, err
	}
	return dict, freq, nil
}
