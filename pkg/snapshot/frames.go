package snapshot

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/transit/pkg/transition"
)

// RenderAll renders one image per visual.
func (c *Compositor) RenderAll(s Scene, visuals []transition.Visual) []*image.RGBA {
	frames := make([]*image.RGBA, len(visuals))
	for i, v := range visuals {
		frames[i] = c.Render(s, v)
	}
	return frames
}

// ContactSheet lays frames out in a grid of cols columns, each cell
// downscaled by thumb (1 keeps full size). Frames are assumed to share
// the size of the first one.
func ContactSheet(frames []*image.RGBA, cols int, thumb float64) *image.RGBA {
	if len(frames) == 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	if cols <= 0 {
		cols = len(frames)
	}
	if thumb <= 0 || thumb > 1 {
		thumb = 1
	}
	first := frames[0].Bounds()
	cw := max(1, int(float64(first.Dx())*thumb))
	ch := max(1, int(float64(first.Dy())*thumb))
	rows := (len(frames) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cw*cols, ch*rows))
	for i, f := range frames {
		cell := image.Rect(0, 0, cw, ch).Add(image.Pt((i%cols)*cw, (i/cols)*ch))
		if thumb == 1 {
			draw.Draw(sheet, cell, f, f.Bounds().Min, draw.Src)
			continue
		}
		xdraw.ApproxBiLinear.Scale(sheet, cell, f, f.Bounds(), xdraw.Src, nil)
	}
	return sheet
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteFrames writes frames to dir as <prefix>-000.png, <prefix>-001.png
// and so on, and returns the paths written.
func WriteFrames(dir, prefix string, frames []*image.RGBA) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(frames))
	for i, f := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%s-%03d.png", prefix, i))
		if err := writeFile(path, f); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := WritePNG(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
