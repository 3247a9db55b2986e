package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	subcommands = append(subcommands, newDecideCommand, newResistCommand)
}

func newDecideCommand(a *app) *cobra.Command {
	var percent, velocity, threshold, fling float64
	c := &cobra.Command{
		Use:   "decide",
		Short: "Evaluate the commit rule for a release",
		Long: `Evaluate whether a released drag commits or cancels.

A release commits when its progress reaches the commit threshold while
moving toward the dismissal edge, or when its speed along the dismissal
direction reaches the fling velocity in either direction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.Options.Decision()
			if cmd.Flags().Changed("threshold") {
				d.CommitThreshold = threshold
			}
			if cmd.Flags().Changed("fling") {
				d.FlingVelocity = fling
			}
			verdict := "cancel"
			if d.ShouldCommit(percent, velocity) {
				verdict = "commit"
			}
			a.logger.Debug("decided", "percent", percent, "velocity", velocity, "verdict", verdict)
			fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return nil
		},
	}
	c.Flags().Float64Var(&percent, "percent", 0, "progress at release, 0 to 1")
	c.Flags().Float64Var(&velocity, "velocity", 0, "release velocity along the dismissal direction, points per second")
	c.Flags().Float64Var(&threshold, "threshold", 0, "override the commit threshold")
	c.Flags().Float64Var(&fling, "fling", 0, "override the fling velocity")
	return c
}

func newResistCommand(a *app) *cobra.Command {
	var secondary bool
	c := &cobra.Command{
		Use:   "resist <translation>...",
		Short: "Apply the drag friction curve to raw translations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.cfg.Options.Primary()
			if secondary {
				f = a.cfg.Options.Secondary()
			}
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid translation %q: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%g\t%.4f\n", x, f.Apply(x))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "limit\t%.4f\n", f.Limit())
			return nil
		},
	}
	c.Flags().BoolVar(&secondary, "secondary", false, "use the cross-axis coefficient")
	return c
}
