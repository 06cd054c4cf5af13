package vanity

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds all loaded wordlists and serves vanity lookups.
type Registry struct {
	mu       sync.RWMutex
	dicts    map[string]*Dictionary
	dictsDir string
}

// NewRegistry creates a new empty registry for the given directory.
func NewRegistry(dictsDir string) *Registry {
	return &Registry{
		dicts:    make(map[string]*Dictionary),
		dictsDir: dictsDir,
	}
}

// Load scans the wordlists directory and loads every dictionary.
func (r *Registry) Load() error {
	entries, err := os.ReadDir(r.dictsDir)
	if err != nil {
		return fmt.Errorf("read wordlists dir %s: %w", r.dictsDir, err)
	}

	newDicts := make(map[string]*Dictionary)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.dictsDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		d, err := LoadDictionary(dir)
		if err != nil {
			return fmt.Errorf("load wordlist %s: %w", entry.Name(), err)
		}
		newDicts[d.Manifest.ID] = d
	}

	r.mu.Lock()
	r.dicts = newDicts
	r.mu.Unlock()
	return nil
}

// Reload reloads all wordlists from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// Match is a single wordlist hit for a digit string.
type Match struct {
	DictID   string   `json:"dict_id"`
	Language string   `json:"language"`
	Words    []string `json:"words"`
}

// LookupResult is the response for a single vanity lookup.
type LookupResult struct {
	Digits  string  `json:"digits"`
	Matches []Match `json:"matches"`
}

// LookupOptions are optional filters for vanity lookups.
type LookupOptions struct {
	Languages []string
	Dicts     []string
}

// Lookup finds the words spelling a keypad digit string across all (or
// filtered) wordlists. Wordlists are iterated in sorted ID order for
// deterministic results.
func (r *Registry) Lookup(digits string, opts *LookupOptions) *LookupResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := &LookupResult{
		Digits:  digits,
		Matches: []Match{},
	}

	ids := make([]string, 0, len(r.dicts))
	for id := range r.dicts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := r.dicts[id]
		if opts != nil {
			if len(opts.Languages) > 0 && !contains(opts.Languages, d.Manifest.Language) {
				continue
			}
			if len(opts.Dicts) > 0 && !contains(opts.Dicts, d.Manifest.ID) {
				continue
			}
		}

		words, ok := d.Lookup(digits)
		if !ok {
			continue
		}
		result.Matches = append(result.Matches, Match{
			DictID:   d.Manifest.ID,
			Language: d.Manifest.Language,
			Words:    words,
		})
	}
	return result
}

// DictInfo is the public metadata for a loaded wordlist.
type DictInfo struct {
	ID        string `json:"id"`
	Version   string `json:"version"`
	Language  string `json:"language"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
	License   string `json:"license"`
	Words     int    `json:"words"`
}

// ListDicts returns metadata for all loaded wordlists, sorted by ID.
func (r *Registry) ListDicts() []DictInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]DictInfo, 0, len(r.dicts))
	for _, d := range r.dicts {
		infos = append(infos, DictInfo{
			ID:        d.Manifest.ID,
			Version:   d.Manifest.Version,
			Language:  d.Manifest.Language,
			Source:    d.Manifest.Source,
			SourceURL: d.Manifest.SourceURL,
			License:   d.Manifest.License,
			Words:     d.WordCount(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// DictCount returns the number of loaded wordlists.
func (r *Registry) DictCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dicts)
}

// TotalWords returns the total number of words across all wordlists.
func (r *Registry) TotalWords() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, d := range r.dicts {
		total += d.WordCount()
	}
	return total
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
