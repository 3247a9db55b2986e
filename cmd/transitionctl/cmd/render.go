package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/presentation"
	"github.com/go-drift/transit/pkg/snapshot"
	transittest "github.com/go-drift/transit/pkg/testing"
	"github.com/go-drift/transit/pkg/transition"
)

func init() {
	subcommands = append(subcommands, newRenderCommand)
}

func newRenderCommand(a *app) *cobra.Command {
	var (
		outDir string
		sheet  string
		scale  float64
		every  int
		cols   int
		thumb  float64
	)
	c := &cobra.Command{
		Use:   "render <trace.yaml>",
		Short: "Replay a gesture trace and render its frames to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := LoadTrace(args[0])
			if err != nil {
				return err
			}
			t, err := tr.Replay(a.cfg, presentation.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer t.Cleanup()

			visuals := sample(t.Host.Visuals(), every)
			if len(visuals) == 0 {
				return fmt.Errorf("trace produced no frames")
			}
			comp := snapshot.NewCompositor(scale)
			frames := comp.RenderAll(sceneOf(t), visuals)
			a.logger.Info("rendered frames", "count", len(frames), "scale", scale)

			out := cmd.OutOrStdout()
			if outDir != "" {
				paths, err := snapshot.WriteFrames(outDir, "frame", frames)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %d frames to %s\n", len(paths), outDir)
			}
			if sheet != "" {
				f, err := os.Create(sheet)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := snapshot.WritePNG(f, snapshot.ContactSheet(frames, cols, thumb)); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote contact sheet %s\n", sheet)
			}
			return nil
		},
	}
	c.Flags().StringVar(&outDir, "out", "", "directory for one PNG per frame")
	c.Flags().StringVar(&sheet, "sheet", "", "write all frames into one contact sheet PNG")
	c.Flags().Float64Var(&scale, "scale", 1, "pixels per point")
	c.Flags().IntVar(&every, "every", 1, "render every nth frame")
	c.Flags().IntVar(&cols, "cols", 8, "contact sheet columns")
	c.Flags().Float64Var(&thumb, "thumb", 0.25, "contact sheet cell scale")
	return c
}

func sceneOf(t *transittest.Tester) snapshot.Scene {
	return snapshot.Scene{
		Container:          graphics.RectFromLTWH(0, 0, transittest.DefaultTestWidth, transittest.DefaultTestHeight),
		Frame:              t.Coordinator.Layout().Frame,
		Source:             transittest.DefaultAnchor.Rect,
		SourceCornerRadius: transittest.DefaultAnchor.CornerRadius,
	}
}

func sample(visuals []transition.Visual, every int) []transition.Visual {
	if every <= 1 {
		return visuals
	}
	out := make([]transition.Visual, 0, len(visuals)/every+1)
	for i := 0; i < len(visuals); i += every {
		out = append(out, visuals[i])
	}
	if last := len(visuals) - 1; last%every != 0 {
		out = append(out, visuals[last])
	}
	return out
}
