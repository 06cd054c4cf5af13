package vanity

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Dictionary is one loaded wordlist with its manifest and in-memory index:
// keypad digit string -> the words that spell it.
type Dictionary struct {
	Manifest *Manifest           `json:"manifest"`
	Entries  map[string][]string `json:"-"`
}

// LoadDictionary reads a manifest.yaml and loads words from gob or csv.
func LoadDictionary(dir string) (*Dictionary, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	d := &Dictionary{
		Manifest: manifest,
		Entries:  make(map[string][]string),
	}

	// Gob takes priority over CSV.
	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		if err := d.loadGob(gobPath); err != nil {
			return nil, fmt.Errorf("wordlist %s: %w", manifest.ID, err)
		}
		return d, nil
	}

	dataPath := filepath.Join(dir, manifest.DataFile)
	if err := d.loadCSV(dataPath); err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", manifest.ID, err)
	}
	return d, nil
}

func (d *Dictionary) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	// Transcode non-UTF-8 encodings declared in the manifest.
	var reader io.Reader = f
	if enc := d.Manifest.Format.Encoding; enc != "" && !isUTF8(enc) {
		e, err := htmlindex.Get(enc)
		if err != nil {
			return fmt.Errorf("unsupported encoding %q: %w", enc, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	if delim := d.Manifest.Format.Delimiter; delim != "" {
		r.Comma = []rune(delim)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	// Read header if present and resolve the word column.
	wordIdx := 0
	if d.Manifest.Format.HasHeader {
		header, err := r.Read()
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if col := d.Manifest.Format.WordColumn; col != "" {
			found := false
			for i, h := range header {
				if strings.TrimSpace(h) == col {
					wordIdx = i
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("word column %q not found in header %v", col, header)
			}
		}
	}

	var skipped int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if wordIdx >= len(record) {
			continue
		}
		if !d.Add(strings.TrimSpace(record[wordIdx])) {
			skipped++
		}
	}

	if skipped > 0 {
		slog.Debug("words not encodable on the keypad", "wordlist", d.Manifest.ID, "skipped", skipped)
	}
	return nil
}

// Add indexes a single word under its keypad digits. Words outside the
// manifest's letter-count bounds or with unmappable characters are
// rejected; duplicates under the same digit key are collapsed.
func (d *Dictionary) Add(word string) bool {
	if word == "" {
		return false
	}
	n := utf8.RuneCountInString(word)
	if n < d.Manifest.Format.MinLetters || n > d.Manifest.Format.MaxLetters {
		return false
	}
	digits, ok := EncodeKeypad(word)
	if !ok {
		return false
	}
	word = strings.ToUpper(FoldASCII(word))
	for _, existing := range d.Entries[digits] {
		if existing == word {
			return true
		}
	}
	d.Entries[digits] = append(d.Entries[digits], word)
	return true
}

// Lookup returns the words of this dictionary spelling the given keypad
// digit string, sorted for deterministic output.
func (d *Dictionary) Lookup(digits string) ([]string, bool) {
	words, ok := d.Entries[digits]
	if !ok {
		return nil, false
	}
	out := make([]string, len(words))
	copy(out, words)
	sort.Strings(out)
	return out, true
}

// WordCount returns the number of indexed words.
func (d *Dictionary) WordCount() int {
	total := 0
	for _, words := range d.Entries {
		total += len(words)
	}
	return total
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
