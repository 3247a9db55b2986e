package layout

import (
	"testing"

	"github.com/go-drift/transit/pkg/graphics"
)

func TestPipeline_HoldDefersLayout(t *testing.T) {
	var p Pipeline
	applied := 0
	apply := func(Result) { applied++ }

	p.Hold()
	p.SetParams(Params{Container: phone})
	if p.Flush(apply) {
		t.Fatal("flush should not run while held")
	}
	if !p.NeedsLayout() {
		t.Fatal("pass should stay owed while held")
	}
	p.Release()
	if !p.Flush(apply) || applied != 1 {
		t.Fatalf("expected deferred pass to run after release, applied=%d", applied)
	}
	if p.Flush(apply) {
		t.Error("no pass should be owed after flushing")
	}
}

func TestPipeline_ZeroResultStaysPending(t *testing.T) {
	var p Pipeline
	p.SetParams(Params{})
	if p.Flush(func(Result) { t.Error("zero geometry must not be applied") }) {
		t.Fatal("flush should report nothing applied")
	}
	p.SetParams(Params{Container: graphics.RectFromLTWH(0, 0, 10, 10)})
	if !p.Flush(nil) {
		t.Error("valid geometry should flush")
	}
	if p.Applied().IsZero() {
		t.Error("expected applied result")
	}
}

func TestPipeline_UnchangedParamsDoNotSchedule(t *testing.T) {
	var p Pipeline
	params := Params{Container: phone}
	p.SetParams(params)
	p.Flush(nil)
	p.SetParams(params)
	if p.NeedsLayout() {
		t.Error("identical params should not schedule a pass")
	}
	p.Release()
	if p.Held() {
		t.Error("extra release should be ignored")
	}
}
