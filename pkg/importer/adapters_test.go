package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/metaconomy/phone-number/pkg/vanity"
)

func TestWordfreqEN_Import(t *testing.T) {
	// One "word count" pair per line; "a" is too short, "c3po" unencodable.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("flowers 1200\npizza 800\na 5\nc3po 1\n"))
	}))
	defer ts.Close()

	a, err := Get("wordfreq-en")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	out := t.TempDir()
	if err := a.Import(context.Background(), ts.URL, out); err != nil {
		t.Fatalf("Import: %v", err)
	}

	d, err := vanity.LoadDictionary(filepath.Join(out, "words-en"))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	if d.WordCount() != 2 {
		t.Errorf("WordCount = %d, want 2", d.WordCount())
	}
	words, ok := d.Lookup("3569377")
	if !ok || len(words) != 1 || words[0] != "FLOWERS" {
		t.Errorf("Lookup(3569377) = (%v, %v)", words, ok)
	}
	if d.Manifest.Language != "en" {
		t.Errorf("manifest language = %q", d.Manifest.Language)
	}
}

func TestFrgutFR_Import(t *testing.T) {
	// Zipped Latin-1 list: "étés" then "fleurs".
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("liste.de.mots.francais.frgut.txt")
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte{0xE9, 0x74, 0xE9, 0x73, '\n'})
	f.Write([]byte("fleurs\n"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer ts.Close()

	a, err := Get("frgut-fr")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	out := t.TempDir()
	if err := a.Import(context.Background(), ts.URL, out); err != nil {
		t.Fatalf("Import: %v", err)
	}

	d, err := vanity.LoadDictionary(filepath.Join(out, "mots-fr"))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	// étés folds to ETES: E3 T8 E3 S7.
	words, ok := d.Lookup("3837")
	if !ok || len(words) != 1 || words[0] != "ETES" {
		t.Errorf("Lookup(3837) = (%v, %v)", words, ok)
	}
	// fleurs: F3 L5 E3 U8 R7 S7.
	if words, ok := d.Lookup("353877"); !ok || words[0] != "FLEURS" {
		t.Errorf("Lookup(353877) = (%v, %v)", words, ok)
	}
}

func TestAll_Registered(t *testing.T) {
	ids := make(map[string]bool)
	for _, a := range All() {
		ids[a.ID()] = true
	}
	for _, want := range []string{"wordfreq-en", "frgut-fr"} {
		if !ids[want] {
			t.Errorf("adapter %s not registered", want)
		}
	}
}
