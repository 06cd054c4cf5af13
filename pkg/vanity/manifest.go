package vanity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/metaconomy/phone-number/pkg/phonetext"
)

// Manifest describes a wordlist: its source, language, and how to read it.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Version   string     `yaml:"version" json:"version"`
	Language  string     `yaml:"language" json:"language"`
	Source    string     `yaml:"source" json:"source"`
	SourceURL string     `yaml:"source_url" json:"source_url,omitempty"`
	License   string     `yaml:"license" json:"license"`
	DataFile  string     `yaml:"data_file" json:"data_file"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes the CSV layout and word filters.
type FormatSpec struct {
	Delimiter  string `yaml:"delimiter"`
	Encoding   string `yaml:"encoding"`
	HasHeader  bool   `yaml:"has_header"`
	WordColumn string `yaml:"word_column"`
	MinLetters int    `yaml:"min_letters"`
	MaxLetters int    `yaml:"max_letters"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.DataFile == "" {
		m.DataFile = "data.csv"
	}
	if m.Format.MinLetters == 0 {
		m.Format.MinLetters = phonetext.MinLengthNSN
	}
	if m.Format.MaxLetters == 0 {
		m.Format.MaxLetters = phonetext.MaxLengthNSN
	}
	return &m, nil
}
