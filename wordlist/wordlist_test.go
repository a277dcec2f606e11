package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove-labs/wordle-puzzle/models"
)

func TestDefaultLoadsEmbeddedWordList(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if d.Len() == 0 {
		t.Fatalf("expected a non-empty default dictionary")
	}
	if !d.Contains(models.MustWord("crane")) {
		t.Errorf("expected default dictionary to contain crane")
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("crane\nslate\nabc12\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected error for malformed line abc12")
	}
}

func TestLoadParsesValidWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("crane\nslate\ntrace\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
}

func TestLoadFrequenciesMissingFileYieldsEmptyTable(t *testing.T) {
	ft, err := LoadFrequencies("")
	if err != nil {
		t.Fatalf("LoadFrequencies: %v", err)
	}
	if ft.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ft.Len())
	}
	if ft.Get(models.MustWord("crane")) != 0 {
		t.Errorf("expected default 0 frequency for an empty table")
	}
}

func TestLoadFrequenciesIgnoresNonFiveLetterWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "freq.txt")
	content := "crane 120.5\nabcdefgh 99\nslate 40\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ft, err := LoadFrequencies(path)
	if err != nil {
		t.Fatalf("LoadFrequencies: %v", err)
	}
	if ft.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (non-five-letter entry ignored)", ft.Len())
	}
	if got := ft.Get(models.MustWord("crane")); got != 120.5 {
		t.Errorf("Get(crane) = %v, want 120.5", got)
	}
}
