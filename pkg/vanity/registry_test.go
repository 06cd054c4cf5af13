package vanity

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRegistryFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	en := filepath.Join(dir, "words-en")
	if err := os.MkdirAll(en, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(en, "manifest.yaml"), []byte(`id: words-en
version: "1.0"
language: en
source: test
license: CC0
data_file: data.csv
format:
  delimiter: ";"
  has_header: false
`), 0o644)
	os.WriteFile(filepath.Join(en, "data.csv"), []byte("FLOWERS\nPIZZA\n"), 0o644)

	fr := filepath.Join(dir, "mots-fr")
	if err := os.MkdirAll(fr, 0o755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(fr, "manifest.yaml"), []byte(`id: mots-fr
version: "1.0"
language: fr
source: test
license: CC0
data_file: data.csv
format:
  delimiter: ";"
  has_header: false
`), 0o644)
	os.WriteFile(filepath.Join(fr, "data.csv"), []byte("FLEURS\n"), 0o644)

	// A stray non-dictionary directory is ignored.
	os.MkdirAll(filepath.Join(dir, "_download"), 0o755)

	return dir
}

func TestRegistry_LoadAndLookup(t *testing.T) {
	reg := NewRegistry(writeRegistryFixture(t))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reg.DictCount() != 2 {
		t.Fatalf("DictCount = %d, want 2", reg.DictCount())
	}
	if reg.TotalWords() != 3 {
		t.Fatalf("TotalWords = %d, want 3", reg.TotalWords())
	}

	result := reg.Lookup("3569377", nil)
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].DictID != "words-en" || result.Matches[0].Words[0] != "FLOWERS" {
		t.Errorf("unexpected match: %+v", result.Matches[0])
	}

	// FLEURS: F3 L5 E3 U8 R7 S7.
	result = reg.Lookup("353877", nil)
	if len(result.Matches) != 1 || result.Matches[0].Language != "fr" {
		t.Fatalf("unexpected FR match: %+v", result.Matches)
	}

	// No words spell this.
	result = reg.Lookup("000", nil)
	if len(result.Matches) != 0 {
		t.Errorf("expected no matches, got %+v", result.Matches)
	}
}

func TestRegistry_LookupFilters(t *testing.T) {
	reg := NewRegistry(writeRegistryFixture(t))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	result := reg.Lookup("3569377", &LookupOptions{Languages: []string{"fr"}})
	if len(result.Matches) != 0 {
		t.Errorf("language filter leaked: %+v", result.Matches)
	}

	result = reg.Lookup("3569377", &LookupOptions{Dicts: []string{"words-en"}})
	if len(result.Matches) != 1 {
		t.Errorf("dict filter dropped the match: %+v", result.Matches)
	}
}

func TestRegistry_ListDicts(t *testing.T) {
	reg := NewRegistry(writeRegistryFixture(t))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	infos := reg.ListDicts()
	if len(infos) != 2 {
		t.Fatalf("ListDicts = %d entries, want 2", len(infos))
	}
	// Sorted by ID.
	if infos[0].ID != "mots-fr" || infos[1].ID != "words-en" {
		t.Errorf("unexpected order: %s, %s", infos[0].ID, infos[1].ID)
	}
	if infos[1].Words != 2 {
		t.Errorf("words-en count = %d, want 2", infos[1].Words)
	}
}

func TestRegistry_Reload(t *testing.T) {
	dir := writeRegistryFixture(t)
	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Drop one wordlist on disk and reload.
	if err := os.RemoveAll(filepath.Join(dir, "mots-fr")); err != nil {
		t.Fatal(err)
	}
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.DictCount() != 1 {
		t.Errorf("DictCount after reload = %d, want 1", reg.DictCount())
	}
}
