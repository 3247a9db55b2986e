package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
)

// updateSnapshotsEnv set to "1" makes MatchesFile rewrite goldens.
const updateSnapshotsEnv = "TRANSIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable trace of host calls.
type Snapshot struct {
	Calls []CallSnapshot `json:"calls"`
}

// CallSnapshot is one host call with its values rounded to two decimals.
type CallSnapshot struct {
	Kind                CallKind    `json:"kind"`
	Transform           *[6]float64 `json:"transform,omitempty"`
	PresentingTransform *[6]float64 `json:"presenting,omitempty"`
	Alpha               float64     `json:"alpha,omitempty"`
	CornerRadius        float64     `json:"radius,omitempty"`
	Bounce              float64     `json:"bounce,omitempty"`
	SourceAlpha         float64     `json:"sourceAlpha,omitempty"`
	Frame               *[4]float64 `json:"frame,omitempty"`
	Direction           string      `json:"direction,omitempty"`
	Completed           bool        `json:"completed,omitempty"`
	Percent             float64     `json:"percent,omitempty"`
}

// CaptureSnapshot captures every call recorded so far.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return t.Host.Snapshot()
}

// Snapshot captures the recorded calls.
func (h *RecordingHost) Snapshot() *Snapshot {
	snap := &Snapshot{Calls: make([]CallSnapshot, 0, len(h.Calls))}
	for _, c := range h.Calls {
		cs := CallSnapshot{Kind: c.Kind}
		switch c.Kind {
		case CallTransformed:
			tr, pr := round6(c.Visual.Transform), round6(c.Visual.PresentingTransform)
			cs.Transform = &tr
			cs.PresentingTransform = &pr
			cs.Alpha = round2(c.Visual.Alpha)
			cs.CornerRadius = round2(c.Visual.CornerRadius)
			cs.Bounce = round2(c.Visual.Bounce)
			cs.SourceAlpha = round2(c.Visual.SourceAlpha)
		case CallLayout:
			f := c.Layout.Frame
			cs.Frame = &[4]float64{round2(f.Left), round2(f.Top), round2(f.Right), round2(f.Bottom)}
			cs.CornerRadius = round2(c.Layout.CornerRadius)
		case CallWillBegin, CallDidEnd:
			cs.Direction = c.Direction.String()
			cs.Completed = c.Completed
		case CallInteraction:
			cs.Percent = round2(c.Percent)
		}
		snap.Calls = append(snap.Calls, cs)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// TRANSIT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: TRANSIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: TRANSIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff from other to this snapshot, or the empty string
// when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round6(m [6]float64) [6]float64 {
	for i := range m {
		m[i] = round2(m[i])
	}
	return m
}
