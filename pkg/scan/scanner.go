package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/metaconomy/phone-number/pkg/phonetext"
)

// Result is one candidate found in a text, before persistence.
type Result struct {
	Line       int    `json:"line"`
	Raw        string `json:"raw"`
	Extracted  string `json:"extracted"`
	Viable     bool   `json:"viable"`
	Normalized string `json:"normalized,omitempty"`
	Extension  string `json:"extension,omitempty"`
}

// ScanLine runs the extract -> viability -> normalize chain on one line of
// text. The second return is false when the line holds nothing number-like.
func ScanLine(line string) (Result, bool) {
	extracted := phonetext.ExtractPossibleNumber(line)
	if extracted == "" {
		return Result{}, false
	}
	r := Result{
		Raw:       strings.TrimSpace(line),
		Extracted: extracted,
		Viable:    phonetext.IsViablePhoneNumber(extracted),
	}
	if r.Viable {
		number, extn := phonetext.MaybeStripExtension(extracted)
		r.Normalized = phonetext.Normalize(number)
		r.Extension = extn
	}
	return r, true
}

// ScanText scans a whole text, one candidate per line.
func ScanText(text string) []Result {
	var results []Result
	line := 0
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line++
		if r, ok := ScanLine(sc.Text()); ok {
			r.Line = line
			results = append(results, r)
		}
	}
	return results
}

// Summary is the outcome of a persisted scan run.
type Summary struct {
	RunID      int64  `json:"run_id"`
	Source     string `json:"source"`
	Lines      int    `json:"lines"`
	Candidates int    `json:"candidates"`
	Viable     int    `json:"viable"`
}

// Scanner persists the candidates it finds in a Store.
type Scanner struct {
	store  *Store
	logger *slog.Logger
}

// NewScanner creates a Scanner writing to store.
func NewScanner(store *Store, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{store: store, logger: logger}
}

// ScanReader scans r line by line, records every candidate under a new run,
// and returns the run summary.
func (s *Scanner) ScanReader(ctx context.Context, source string, r io.Reader) (*Summary, error) {
	runID, err := s.store.CreateRun(source)
	if err != nil {
		return nil, err
	}

	sum := &Summary{RunID: runID, Source: source}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		sum.Lines++
		res, ok := ScanLine(sc.Text())
		if !ok {
			continue
		}
		sum.Candidates++
		if res.Viable {
			sum.Viable++
		}
		c := Candidate{
			RunID:      runID,
			Line:       sum.Lines,
			Raw:        res.Raw,
			Extracted:  res.Extracted,
			Viable:     res.Viable,
			Normalized: res.Normalized,
			Extension:  res.Extension,
		}
		if err := s.store.AddCandidate(c); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source %s: %w", source, err)
	}

	if err := s.store.FinishRun(runID, sum.Lines, sum.Candidates, sum.Viable); err != nil {
		return nil, err
	}
	s.logger.Info("scan finished",
		"source", source,
		"run", runID,
		"lines", sum.Lines,
		"candidates", sum.Candidates,
		"viable", sum.Viable,
	)
	return sum, nil
}
