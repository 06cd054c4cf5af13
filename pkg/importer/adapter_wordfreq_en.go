package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/metaconomy/phone-number/pkg/phonetext"
	"github.com/metaconomy/phone-number/pkg/vanity"
)

func init() {
	Register(&wordfreqENAdapter{})
}

// wordfreqENAdapter imports the English word frequency list derived from the
// OpenSubtitles corpus. The source is plain UTF-8, one "word count" pair per
// line, most frequent first.
type wordfreqENAdapter struct{}

func (a *wordfreqENAdapter) ID() string          { return "wordfreq-en" }
func (a *wordfreqENAdapter) DictID() string      { return "words-en" }
func (a *wordfreqENAdapter) Description() string { return "English word frequency list (OpenSubtitles)" }
func (a *wordfreqENAdapter) DefaultURL() string {
	return "https://raw.githubusercontent.com/hermitdave/FrequencyWords/master/content/2018/en/en_50k.txt"
}
func (a *wordfreqENAdapter) License() string { return "CC-BY-SA-4.0" }

func (a *wordfreqENAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	txtPath := filepath.Join(dlDir, "en_50k.txt")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, txtPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	m := &vanity.Manifest{
		ID:        a.DictID(),
		Version:   "2026-08",
		Language:  "en",
		Source:    "FrequencyWords (OpenSubtitles 2018)",
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
		return fmt.Errorf("open download: %w", err)
	}
	defer f.Close()

	kept := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if d.Add(fields[0]) {
			kept++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read word list: %w", err)
	}

	fmt.Printf("  %d English words indexed\n", kept)

	dictDir := filepath.Join(outputDir, a.DictID())
	if err := ensureDir(dictDir); err != nil {
		return err
	}
	if err := vanity.SaveGob(d.Entries, filepath.Join(dictDir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}
	return writeManifest(dictDir, m)
}
