package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/transit/pkg/animation"
	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/input"
	"github.com/go-drift/transit/pkg/layout"
	"github.com/go-drift/transit/pkg/presentation"
	"github.com/go-drift/transit/pkg/transition"
)

func init() {
	subcommands = append(subcommands, newInputCommand)
}

// frameInterval paces the live scheduler.
const frameInterval = 16 * time.Millisecond

func newInputCommand(a *app) *cobra.Command {
	var device string
	c := &cobra.Command{
		Use:   "input",
		Short: "Drive a live presentation from a touch device",
		Long: `Present a view and dismiss it interactively with a real touch device.

Host callbacks are logged; run with --log-level debug to see every frame.
The command exits when the view is dismissed or on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if device == "" {
				device = a.cfg.Input.Device
			}
			if device == "" {
				return errors.New("no input device: pass --device or set input.device")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runInput(ctx, device)
		},
	}
	c.Flags().StringVar(&device, "device", "", "evdev node, such as /dev/input/event3")
	return c
}

func (a *app) runInput(ctx context.Context, device string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := animation.NewScheduler(animation.SystemClock{})
	host := &logHost{logger: a.logger, dismissed: cancel}
	coord := presentation.New(sched, host, presentation.WithLogger(a.logger))
	defer coord.Dispose()

	width, height := a.cfg.Input.Width, a.cfg.Input.Height
	if width <= 0 || height <= 0 {
		width, height = 390, 844
	}
	coord.SetContainer(graphics.RectFromLTWH(0, 0, width, height), graphics.EdgeInsets{})

	var recognizer gestures.Recognizer
	recognizer.OnSample = coord.HandleSample
	reader, err := input.Open(device, input.Options{Width: width, Height: height}, sched, recognizer.HandleEvent, a.logger)
	if err != nil {
		return err
	}
	if err := coord.BeginPresentation(presentation.Anchor{}, presentation.Config{Kind: a.cfg.Kind, Options: a.cfg.Options}); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() { errc <- reader.Run(ctx) }()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sched.Tick()
		case err := <-errc:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// logHost reports host callbacks to the logger and stops the loop once
// the view is dismissed.
type logHost struct {
	logger    *slog.Logger
	dismissed func()
}

func (h *logHost) PresentedViewTransformed(v transition.Visual) {
	h.logger.Debug("transform", "matrix", fmt.Sprint(v.Transform), "alpha", v.Alpha, "radius", v.CornerRadius)
}

func (h *logHost) ApplyLayout(r layout.Result) {
	h.logger.Info("layout", "frame", fmt.Sprint(r.Frame), "radius", r.CornerRadius)
}

func (h *logHost) TransitionWillBegin(d transition.Direction) {
	h.logger.Info("transition will begin", "direction", d)
}

func (h *logHost) TransitionDidEnd(d transition.Direction, completed bool) {
	h.logger.Info("transition did end", "direction", d, "completed", completed)
}

func (h *logHost) PerformPresentation() {
	h.logger.Info("presented")
}

func (h *logHost) PerformDismissal() {
	h.logger.Info("dismissed")
	h.dismissed()
}

func (h *logHost) ShouldAllowDismiss() bool {
	return true
}
