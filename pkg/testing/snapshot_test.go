package testing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/transition"
)

// dragDismiss records a slide presentation dragged down by distance and
// flung away.
func dragDismiss(t *testing.T, distance float64) *Snapshot {
	tr := NewTesterWithT(t)
	tr.Present(transition.KindSlide, transition.Options{})
	tr.Drag(graphics.Offset{Y: distance}, graphics.Offset{Y: 2000})
	tr.PumpAndSettle(time.Second)
	return tr.CaptureSnapshot()
}

func TestSnapshotRecordsLifecycle(t *testing.T) {
	seen := map[CallKind]int{}
	for _, c := range dragDismiss(t, 400).Calls {
		seen[c.Kind]++
	}
	for _, k := range []CallKind{CallLayout, CallWillBegin, CallTransformed, CallPerformDismissal, CallDidEnd} {
		if seen[k] == 0 {
			t.Errorf("expected at least one %s call", k)
		}
	}
	if seen[CallPerformDismissal] != 1 {
		t.Errorf("expected exactly one dismissal, got %d", seen[CallPerformDismissal])
	}
}

func TestSnapshotDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		wantDiff bool
	}{
		{"same drag", 400, 400, false},
		{"longer drag", 400, 500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := dragDismiss(t, tt.a).Diff(dragDismiss(t, tt.b))
			if (diff != "") != tt.wantDiff {
				t.Errorf("expected diff=%t, got %q", tt.wantDiff, diff)
			}
		})
	}
}

func TestSnapshotGoldenRoundTrip(t *testing.T) {
	t.Setenv(updateSnapshotsEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "slide.json")
	snap := dragDismiss(t, 400)
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("expected golden to be written, got %v", err)
	}
	rec := &recorder{name: t.Name()}
	snap.MatchesFile(rec, path)
	if rec.fatals != 0 || rec.errors != 0 {
		t.Errorf("expected a clean match, got %d fatals and %d errors", rec.fatals, rec.errors)
	}
}

func TestSnapshotMatchesFileFailures(t *testing.T) {
	t.Setenv(updateSnapshotsEnv, "")
	golden := filepath.Join(t.TempDir(), "golden.json")
	if err := dragDismiss(t, 400).UpdateFile(golden); err != nil {
		t.Fatal(err)
	}

	missing := &recorder{name: t.Name()}
	dragDismiss(t, 400).MatchesFile(missing, filepath.Join(t.TempDir(), "absent.json"))
	if missing.fatals != 1 {
		t.Errorf("expected a missing golden to be fatal, got %d fatals", missing.fatals)
	}

	mismatch := &recorder{name: t.Name()}
	dragDismiss(t, 700).MatchesFile(mismatch, golden)
	if mismatch.errors != 1 || mismatch.fatals != 0 {
		t.Errorf("expected one mismatch error, got %d errors and %d fatals", mismatch.errors, mismatch.fatals)
	}
}

func TestSnapshotUpdateEnvWritesGolden(t *testing.T) {
	t.Setenv(updateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "fresh.json")
	dragDismiss(t, 400).MatchesFile(t, path)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected golden to be created, got %v", err)
	}
}

// recorder counts MatchesFile failures instead of failing the test.
type recorder struct {
	name           string
	fatals, errors int
}

func (r *recorder) Helper()               {}
func (r *recorder) Name() string          { return r.name }
func (r *recorder) Fatalf(string, ...any) { r.fatals++ }
func (r *recorder) Errorf(string, ...any) { r.errors++ }
