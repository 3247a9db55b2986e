package errors

import (
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/atomic"
)

// handlerBox gives atomic.Value one concrete type to hold.
type handlerBox struct {
	h ErrorHandler
}

var handler atomic.Value

func init() {
	handler.Store(handlerBox{h: &LogHandler{}})
}

// SetHandler replaces the process-wide handler. Nil restores a LogHandler
// on slog's default logger.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handler.Store(handlerBox{h: h})
}

// CurrentHandler returns the process-wide handler.
func CurrentHandler() ErrorHandler {
	return handler.Load().(handlerBox).h
}

// Report stamps err and hands it to the handler.
func Report(err *TransitionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic stamps err and hands it to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Guard runs fn. A panic is reported under op and swallowed, and Guard
// returns false.
func Guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
			ok = false
		}
	}()
	fn()
	return true
}

// CaptureStack formats the goroutine's stack, skipping CaptureStack and
// its caller.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		sb.WriteString(frame.Function + "\n\t" + frame.File + ":" + strconv.Itoa(frame.Line) + "\n")
	}
	return sb.String()
}
