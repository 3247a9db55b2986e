//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/go-drift/transit/pkg/animation"
	transiterrors "github.com/go-drift/transit/pkg/errors"
	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/logging"
)

// ErrRunning is returned by Run when the reader is already running.
var ErrRunning = errors.New("input: reader already running")

// Device is the part of *evdev.InputDevice a Reader uses.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Reader reads a touch device on its own goroutine and posts decoded
// pointer events onto a scheduler, so the handler runs on the UI turn.
type Reader struct {
	dev     Device
	decoder *Decoder
	sched   *animation.Scheduler
	handle  func(gestures.PointerEvent)
	logger  *slog.Logger

	running   *atomic.Bool
	delivered *atomic.Int64
}

// NewReader creates a reader delivering events from dev to handle.
func NewReader(dev Device, decoder *Decoder, sched *animation.Scheduler, handle func(gestures.PointerEvent), logger *slog.Logger) *Reader {
	return &Reader{
		dev:       dev,
		decoder:   decoder,
		sched:     sched,
		handle:    handle,
		logger:    logging.OrNop(logger),
		running:   atomic.NewBool(false),
		delivered: atomic.NewInt64(0),
	}
}

// Open opens the device at path and sizes a decoder from its axis ranges.
func Open(path string, opts Options, sched *animation.Scheduler, handle func(gestures.PointerEvent), logger *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("failed to query axes of %s: %w", path, err)
	}
	x := axisRange(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	y := axisRange(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	logger = logging.OrNop(logger)
	if name, err := dev.Name(); err == nil {
		logger.Info("opened touch device", "path", path, "name", name, "x", x, "y", y)
	}
	return NewReader(dev, NewDecoder(x, y, opts), sched, handle, logger), nil
}

// Run reads until ctx is done or the device fails. Cancelling ctx closes
// the device to unblock the pending read.
func (r *Reader) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer r.running.Store(false)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			r.dev.Close()
		case <-done:
		}
	}()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			transiterrors.Report(&transiterrors.TransitionError{Op: "input.ReadOne", Kind: transiterrors.KindInput, Err: err})
			return fmt.Errorf("failed to read input event: %w", err)
		}
		for _, pe := range r.decoder.Decode(ev) {
			r.sched.Post(func() { r.handle(pe) })
			r.delivered.Inc()
			r.logger.Debug("pointer", "phase", pe.Phase, "x", pe.Position.X, "y", pe.Position.Y)
		}
	}
}

// Running reports whether Run is in progress.
func (r *Reader) Running() bool {
	return r.running.Load()
}

// Delivered returns how many pointer events have been posted.
func (r *Reader) Delivered() int64 {
	return r.delivered.Load()
}

func axisRange(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) Range {
	for _, code := range codes {
		if info, ok := infos[code]; ok {
			return Range{Min: info.Minimum, Max: info.Maximum}
		}
	}
	return Range{}
}
