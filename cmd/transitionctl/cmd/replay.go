package cmd

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-drift/transit/pkg/metrics"
	"github.com/go-drift/transit/pkg/presentation"
)

func init() {
	subcommands = append(subcommands, newReplayCommand)
}

func newReplayCommand(a *app) *cobra.Command {
	var withMetrics bool
	c := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Replay a gesture trace and report each transition session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := LoadTrace(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			observers := fanOut{eventPrinter(out)}
			var reg *prometheus.Registry
			if withMetrics {
				m := metrics.New(a.cfg.Namespace)
				reg = prometheus.NewRegistry()
				reg.MustRegister(m)
				observers = append(observers, m)
			}
			t, err := tr.Replay(a.cfg, presentation.WithLogger(a.logger), presentation.WithObserver(observers))
			if err != nil {
				return err
			}
			defer t.Cleanup()

			fmt.Fprintf(out, "presented=%t state=%s frames=%d\n",
				t.Coordinator.IsPresented(), t.Coordinator.State(), len(t.Host.Visuals()))
			if reg != nil {
				return metrics.WriteText(out, reg)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&withMetrics, "metrics", false, "print prometheus metrics after the replay")
	return c
}

// fanOut delivers events to several observers in order.
type fanOut []presentation.Observer

func (f fanOut) TransitionEvent(e presentation.Event) {
	for _, o := range f {
		o.TransitionEvent(e)
	}
}

func eventPrinter(w io.Writer) presentation.ObserverFunc {
	return func(e presentation.Event) {
		switch e.Phase {
		case presentation.EventBegan:
			fmt.Fprintf(w, "session %d %s %s began interactive=%t\n", e.Session, e.Kind, e.Direction, e.Interactive)
		case presentation.EventEnded:
			fmt.Fprintf(w, "session %d %s %s ended %s after %s\n", e.Session, e.Kind, e.Direction, e.Outcome, e.Elapsed)
		case presentation.EventVetoed:
			fmt.Fprintf(w, "session %d %s %s vetoed\n", e.Session, e.Kind, e.Direction)
		}
	}
}
