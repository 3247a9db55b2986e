package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTransitionErrorString(t *testing.T) {
	err := &TransitionError{
		Op:   "presentation.ApplyLayout",
		Kind: KindGeometry,
		Err:  stderrors.New("empty container"),
	}
	want := "presentation.ApplyLayout [geometry]: empty container"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTransitionErrorWithSession(t *testing.T) {
	err := &TransitionError{Op: "op", Kind: KindHost, Err: stderrors.New("x"), Session: 7}
	if got := err.Error(); !strings.Contains(got, "session=7") {
		t.Errorf("error string %q should contain session", got)
	}
}

func TestTransitionErrorUnwrap(t *testing.T) {
	base := stderrors.New("base")
	err := &TransitionError{Op: "op", Kind: KindConfig, Err: &ParseError{Source: "a.yaml", Field: "edges", Err: base}}
	if !stderrors.Is(err, base) {
		t.Error("expected errors.Is to reach the base error")
	}
	var pe *ParseError
	if !stderrors.As(err, &pe) || pe.Field != "edges" {
		t.Error("expected errors.As to find the ParseError")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindHost, "host"},
		{KindGeometry, "geometry"},
		{KindGesture, "gesture"},
		{KindConfig, "config"},
		{KindInput, "input"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "presentation.HandleSample"
	if got, want := err.Error(), "panic in presentation.HandleSample: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Source: "transit.toml", Field: "curve", Got: 3}
	if got := err.Error(); !strings.Contains(got, "curve") || !strings.Contains(got, "int") {
		t.Errorf("unexpected message %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *TransitionError
	withHandler(t, &testHandler{onError: func(err *TransitionError) { captured = err }})

	Report(&TransitionError{Op: "test.op", Kind: KindHost, Err: stderrors.New("boom")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestGuardCapturesPanic(t *testing.T) {
	var captured *PanicError
	withHandler(t, &testHandler{onPanic: func(err *PanicError) { captured = err }})

	Guard("test.guard", func() { panic("intentional test panic") })

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" || captured.Op != "test.guard" {
		t.Errorf("unexpected panic record %+v", captured)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestGuard(t *testing.T) {
	panics := 0
	withHandler(t, &testHandler{onPanic: func(*PanicError) { panics++ }})

	if !Guard("ok", func() {}) {
		t.Error("Guard should report success")
	}
	if Guard("bad", func() { panic("host exploded") }) {
		t.Error("Guard should report the panic")
	}
	if panics != 1 {
		t.Errorf("expected 1 reported panic, got %d", panics)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := CurrentHandler()
	defer SetHandler(old)
	SetHandler(nil)
	if _, ok := CurrentHandler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", CurrentHandler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}
	h.HandleError(&TransitionError{Op: "op", Kind: KindHost, Err: stderrors.New("nope"), Session: 3, StackTrace: "trace"})
	h.HandlePanic(&PanicError{Op: "op", Value: "bad"})
	out := buf.String()
	for _, want := range []string{"kind=host", "err=nope", "session=3", "stack=trace", "value=bad"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func withHandler(t *testing.T, h ErrorHandler) {
	t.Helper()
	old := CurrentHandler()
	SetHandler(h)
	t.Cleanup(func() { SetHandler(old) })
}

type testHandler struct {
	onError func(*TransitionError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *TransitionError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
