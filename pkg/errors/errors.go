// Package errors provides structured error reporting for the transition
// engine.
//
// Nothing in the engine is fatal: gesture and geometry ambiguities are
// resolved by policy, and host callbacks run under [Guard] so that a
// failing host cannot strand a view half-transformed. What does go wrong is
// reported to a process-wide [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind says which part of the engine a failure came from.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindHost is a failing host callback.
	KindHost
	// KindGeometry is geometry that could not be resolved or applied.
	KindGeometry
	// KindGesture is input that could not be turned into samples.
	KindGesture
	// KindConfig is an invalid configuration.
	KindConfig
	// KindInput is a device read failure.
	KindInput
	// KindPanic is a recovered panic.
	KindPanic
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindHost:     "host",
	KindGeometry: "geometry",
	KindGesture:  "gesture",
	KindConfig:   "config",
	KindInput:    "input",
	KindPanic:    "panic",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// TransitionError is a failure attributed to an operation and, when one
// was running, a transition session.
type TransitionError struct {
	// Op names the failing operation, such as "input.ReadOne".
	Op      string
	Kind    ErrorKind
	Err     error
	Session uint64
	// StackTrace is optional and only logged by a verbose LogHandler.
	StackTrace string
	// Timestamp is filled in by Report when left zero.
	Timestamp time.Time
}

func (e *TransitionError) Error() string {
	if e.Session == 0 {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s] session=%d: %v", e.Op, e.Kind, e.Session, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// PanicError is a panic recovered by Guard.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// ParseError is a configuration or trace value that could not be decoded.
type ParseError struct {
	// Source is the file or stream being decoded.
	Source string
	// Field is the dotted path of the offending value.
	Field string
	Got   any
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s in %s: got %v (%T)", e.Field, e.Source, e.Got, e.Got)
	}
	return fmt.Sprintf("invalid %s in %s: %v", e.Field, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorHandler receives what the engine reports.
type ErrorHandler interface {
	HandleError(err *TransitionError)
	HandlePanic(err *PanicError)
}
