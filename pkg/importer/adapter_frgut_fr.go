package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/metaconomy/phone-number/pkg/phonetext"
	"github.com/metaconomy/phone-number/pkg/vanity"
)

func init() {
	Register(&frgutFRAdapter{})
}

// frgutFRAdapter imports the "francais-gutenberg" French word list. The
// source ships as a ZIP holding one Latin-1 text file, one word per line.
type frgutFRAdapter struct{}

func (a *frgutFRAdapter) ID() string          { return "frgut-fr" }
func (a *frgutFRAdapter) DictID() string      { return "mots-fr" }
func (a *frgutFRAdapter) Description() string { return "French word list (francais-gutenberg)" }
func (a *frgutFRAdapter) DefaultURL() string {
	return "http://www.pallier.org/extra/liste.de.mots.francais.frgut.zip"
}
func (a *frgutFRAdapter) License() string { return "Public Domain" }

func (a *frgutFRAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	zipPath := filepath.Join(dlDir, "frgut.zip")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, zipPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	files, err := unzipFile(zipPath, dlDir)
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	var txtPath string
	for _, f := range files {
		if strings.HasSuffix(f, ".txt") {
			txtPath = f
			break
		}
	}
	if txtPath == "" {
		return fmt.Errorf("no .txt entry in %s", sourceURL)
	}

	m := &vanity.Manifest{
		ID:        a.DictID(),
		Version:   "2026-08",
		Language:  "fr",
		Source:    "francais-gutenberg",
		SourceURL: sourceURL,
		License:   a.License(),
		DataFile:  "data.gob",
		Format: vanity.FormatSpec{
			MinLetters: phonetext.MinLengthNSN,
			MaxLetters: phonetext.MaxLengthNSN,
		},
	}
	d := &vanity.Dictionary{Manifest: m, Entries: make(map[string][]string)}

	f, err := os.Open(txtPath)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	enc, err := htmlindex.Get("windows-1252")
	if err != nil {
		return fmt.Errorf("latin-1 decoder: %w", err)
	}

	kept := 0
	sc := bufio.NewScanner(transform.NewReader(f, enc.NewDecoder()))
	for sc.Scan() {
		if d.Add(strings.TrimSpace(sc.Text())) {
			kept++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read word list: %w", err)
	}

	fmt.Printf("  %d French words indexed\n", kept)

	dictDir := filepath.Join(outputDir, a.DictID())
	if err := ensureDir(dictDir); err != nil {
		return err
	}
	if err := vanity.SaveGob(d.Entries, filepath.Join(dictDir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}
	return writeManifest(dictDir, m)
}
