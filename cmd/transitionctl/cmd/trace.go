package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/transit/pkg/config"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/presentation"
	transittest "github.com/go-drift/transit/pkg/testing"
	"github.com/go-drift/transit/pkg/transition"
)

// settleTimeout bounds every settle a trace asks for.
const settleTimeout = 10 * time.Second

// Trace is a recorded interaction, replayed against a coordinator.
//
//	kind: card
//	steps:
//	  - drag: {y: 320}
//	  - release: {y: 900}
//	  - settle: true
type Trace struct {
	// Kind overrides the configured transition kind.
	Kind string `yaml:"kind,omitempty"`
	// Immediate presents without animating.
	Immediate bool   `yaml:"immediate,omitempty"`
	Steps     []Step `yaml:"steps"`
}

// Step is one trace action. Exactly one field is set.
type Step struct {
	// Drag moves the finger by the offset, starting a drag if needed.
	Drag *Point `yaml:"drag,omitempty"`
	// Release lifts the finger with the given velocity.
	Release *Point `yaml:"release,omitempty"`
	// Cancel cancels the drag.
	Cancel bool `yaml:"cancel,omitempty"`
	// Pump advances time by a duration such as "120ms".
	Pump string `yaml:"pump,omitempty"`
	// Settle runs frames until nothing animates.
	Settle bool `yaml:"settle,omitempty"`
	// Dismiss requests a programmatic dismissal, animated when true.
	Dismiss *bool `yaml:"dismiss,omitempty"`
	// Keyboard sets the keyboard height.
	Keyboard *float64 `yaml:"keyboard,omitempty"`
}

// Point is an offset in points, or a velocity in points per second.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p *Point) offset() graphics.Offset {
	return graphics.Offset{X: p.X, Y: p.Y}
}

// LoadTrace reads a YAML trace.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse trace %s: %w", path, err)
	}
	return &tr, nil
}

// Replay presents with the trace's kind and runs its steps. The returned
// tester holds the recorded host calls.
func (tr *Trace) Replay(cfg *config.Resolved, opts ...presentation.Option) (*transittest.Tester, error) {
	kind := cfg.Kind
	if tr.Kind != "" {
		k, err := transition.ParseKind(tr.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	t := transittest.NewTester(opts...)
	err := t.PresentWith(transittest.DefaultAnchor, presentation.Config{
		Kind:      kind,
		Options:   cfg.Options,
		Immediate: tr.Immediate,
	})
	if err != nil {
		t.Cleanup()
		return nil, err
	}
	for i, step := range tr.Steps {
		if err := step.run(t); err != nil {
			t.Cleanup()
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return t, nil
}

func (s Step) run(t *transittest.Tester) error {
	switch {
	case s.Drag != nil:
		t.DragBy(s.Drag.offset())
	case s.Release != nil:
		t.EndDrag(s.Release.offset())
	case s.Cancel:
		t.CancelDrag()
	case s.Pump != "":
		d, err := time.ParseDuration(s.Pump)
		if err != nil {
			return err
		}
		t.PumpFor(d)
	case s.Settle:
		return t.PumpAndSettle(settleTimeout)
	case s.Dismiss != nil:
		t.Coordinator.RequestDismiss(*s.Dismiss)
	case s.Keyboard != nil:
		t.Coordinator.SetKeyboardHeight(*s.Keyboard)
	default:
		return errors.New("empty step")
	}
	return nil
}
