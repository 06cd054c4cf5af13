package scan

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureText = `Dear customer,

please call us on +44 20 7946 0958...
1-800-FLOWERS
Our fax is 12 (too short to matter).
Nothing to see on this line.
Support: 650-253-0000 ext. 7032
`

func TestScanText(t *testing.T) {
	results := ScanText(fixtureText)

	// Lines with any digit or plus yield a candidate; only the real
	// numbers are viable.
	byLine := make(map[int]Result)
	for _, r := range results {
		byLine[r.Line] = r
	}

	uk, ok := byLine[3]
	if !ok || !uk.Viable {
		t.Fatalf("line 3: expected viable candidate, got %+v", uk)
	}
	if uk.Extracted != "+44 20 7946 0958" {
		t.Errorf("line 3 extracted = %q", uk.Extracted)
	}
	if uk.Normalized != "442079460958" {
		t.Errorf("line 3 normalized = %q", uk.Normalized)
	}

	vanity, ok := byLine[4]
	if !ok || !vanity.Viable || vanity.Normalized != "18003569377" {
		t.Fatalf("line 4: got %+v", vanity)
	}

	short, ok := byLine[5]
	if !ok {
		t.Fatal("line 5: expected a (non-viable) candidate")
	}
	if short.Viable {
		t.Errorf("line 5: %q should not be viable", short.Extracted)
	}

	if _, ok := byLine[6]; ok {
		t.Error("line 6: no candidate expected")
	}

	ext, ok := byLine[7]
	if !ok || !ext.Viable {
		t.Fatalf("line 7: got %+v", ext)
	}
	if ext.Extension != "7032" {
		t.Errorf("line 7 extension = %q", ext.Extension)
	}
	if ext.Normalized != "6502530000" {
		t.Errorf("line 7 normalized = %q", ext.Normalized)
	}
}

func TestScanReader_Persists(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "scan.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	s := NewScanner(store, nil)
	sum, err := s.ScanReader(context.Background(), "fixture.txt", strings.NewReader(fixtureText))
	if err != nil {
		t.Fatalf("ScanReader: %v", err)
	}

	if sum.Lines != 7 {
		t.Errorf("Lines = %d, want 7", sum.Lines)
	}
	if sum.Candidates != 4 {
		t.Errorf("Candidates = %d, want 4", sum.Candidates)
	}
	if sum.Viable != 3 {
		t.Errorf("Viable = %d, want 3", sum.Viable)
	}

	run, err := store.GetRun(sum.RunID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.FinishedAt == nil {
		t.Error("run not marked finished")
	}
	if run.Candidates != sum.Candidates || run.Viable != sum.Viable {
		t.Errorf("run counters %+v disagree with summary %+v", run, sum)
	}

	cands, err := store.RunCandidates(sum.RunID)
	if err != nil {
		t.Fatalf("RunCandidates: %v", err)
	}
	if len(cands) != 4 {
		t.Fatalf("stored candidates = %d, want 4", len(cands))
	}
	if cands[0].Line != 3 || cands[0].Normalized != "442079460958" {
		t.Errorf("first stored candidate: %+v", cands[0])
	}
}

func TestStore_ListRuns(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "scan.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	s := NewScanner(store, nil)
	for _, src := range []string{"a.txt", "b.txt"} {
		if _, err := s.ScanReader(context.Background(), src, strings.NewReader("+1 650 253 0000\n")); err != nil {
			t.Fatalf("ScanReader(%s): %v", src, err)
		}
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Source != "b.txt" {
		t.Errorf("runs[0].Source = %q, want b.txt", runs[0].Source)
	}
}
