// Package snapshot rasterizes transition frames.
//
// A Compositor draws the presenting view, the source element and the
// presented view of a Scene under one Visual, the same way a host would
// apply it: transforms, corner radius, opacity and snapshot proxies. Frame
// sequences rendered this way are used for visual regression tests and by
// transitionctl render.
package snapshot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/transition"
)

// Default layer colors, used when a Scene leaves a layer's image nil.
var (
	DefaultBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	DefaultPresenting = color.RGBA{R: 0xe8, G: 0xea, B: 0xef, A: 0xff}
	DefaultSource     = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	DefaultPresented  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Scene is the geometry and content of one transition.
type Scene struct {
	// Container is the presentation's bounds, in points.
	Container graphics.Rect
	// Frame is the presented view's resting frame.
	Frame graphics.Rect
	// Source is the element a matched-geometry transition grows from.
	Source graphics.Rect
	// SourceCornerRadius rounds the source element.
	SourceCornerRadius float64

	// Presenting, SourceImage and Presented are stretched over Container,
	// Source and Frame. A nil image draws a solid default color.
	Presenting  image.Image
	SourceImage image.Image
	Presented   image.Image
}

// Compositor renders Scenes into RGBA images.
type Compositor struct {
	// Scale is pixels per point. Zero means 1.
	Scale float64
	// Interpolator resamples layer images. Nil means bilinear.
	Interpolator xdraw.Interpolator
	// Background fills pixels no layer covers.
	Background color.Color
}

// NewCompositor returns a compositor rendering at scale pixels per point.
func NewCompositor(scale float64) *Compositor {
	return &Compositor{Scale: scale}
}

// Bounds returns the pixel rectangle Render produces for s.
func (c *Compositor) Bounds(s Scene) image.Rectangle {
	scale := c.scale()
	return image.Rect(0, 0,
		int(math.Ceil(s.Container.Width()*scale)),
		int(math.Ceil(s.Container.Height()*scale)))
}

// Render draws s posed by v.
func (c *Compositor) Render(s Scene, v transition.Visual) *image.RGBA {
	dst := image.NewRGBA(c.Bounds(s))
	bg := c.Background
	if bg == nil {
		bg = DefaultBackground
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	origin := s.Container.Origin()
	c.layer(dst, s.Presenting, DefaultPresenting, s.Container.Translate(-origin.X, -origin.Y), 0, v.PresentingTransform, 1)
	if !s.Source.IsEmpty() && !v.UsesProxies {
		c.layer(dst, s.SourceImage, DefaultSource, s.Source.Translate(-origin.X, -origin.Y), s.SourceCornerRadius, v.PresentingTransform, 1)
	}

	frame := s.Frame.Translate(-origin.X, -origin.Y)
	if v.UsesProxies && v.SourceAlpha > 0 {
		c.layer(dst, s.SourceImage, DefaultSource, frame, v.CornerRadius, v.Transform, v.SourceAlpha)
	}
	c.layer(dst, s.Presented, DefaultPresented, frame, v.CornerRadius, v.Transform, v.Alpha)
	return dst
}

// layer draws img stretched over rect, rounded by radius, through m, at
// alpha.
func (c *Compositor) layer(dst *image.RGBA, img image.Image, fallback color.Color, rect graphics.Rect, radius float64, m matrix.Matrix, alpha float64) {
	if rect.IsEmpty() || alpha <= 0 {
		return
	}
	mask := c.mask(dst.Bounds(), rect, radius, m, alpha)
	if img == nil {
		draw.DrawMask(dst, dst.Bounds(), image.NewUniform(fallback), image.Point{}, mask, image.Point{}, draw.Over)
		return
	}
	sr := img.Bounds()
	if sr.Empty() {
		return
	}
	interp := c.Interpolator
	if interp == nil {
		interp = xdraw.BiLinear
	}
	interp.Transform(dst, c.affine(rect, sr, m), img, sr, xdraw.Over, &xdraw.Options{
		DstMask:  mask,
		DstMaskP: dst.Bounds().Min,
	})
}

// affine maps pixels of a source image covering sr onto rect, then through
// m, then to device pixels.
func (c *Compositor) affine(rect graphics.Rect, sr image.Rectangle, m matrix.Matrix) f64.Aff3 {
	scale := c.scale()
	kx := rect.Width() / float64(sr.Dx())
	ky := rect.Height() / float64(sr.Dy())
	left := rect.Left - kx*float64(sr.Min.X)
	top := rect.Top - ky*float64(sr.Min.Y)
	return f64.Aff3{
		scale * m[0] * kx, scale * m[2] * ky, scale * (m[0]*left + m[2]*top + m[4]),
		scale * m[1] * kx, scale * m[3] * ky, scale * (m[1]*left + m[3]*top + m[5]),
	}
}

// mask rasterizes the rounded rect through m into an alpha mask covering
// bounds.
func (c *Compositor) mask(bounds image.Rectangle, rect graphics.Rect, radius float64, m matrix.Matrix, alpha float64) *image.Alpha {
	scale := c.scale()
	point := func(p graphics.Offset) (float32, float32) {
		q := graphics.Apply(m, p)
		return float32(q.X * scale), float32(q.Y * scale)
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	for _, seg := range roundedRect(rect, radius) {
		switch seg.op {
		case opMove:
			z.MoveTo(point(seg.p[0]))
		case opLine:
			z.LineTo(point(seg.p[0]))
		case opQuad:
			x1, y1 := point(seg.p[0])
			x2, y2 := point(seg.p[1])
			z.QuadTo(x1, y1, x2, y2)
		}
	}
	z.ClosePath()

	out := image.NewAlpha(bounds)
	src := image.NewUniform(color.Alpha{A: uint8(math.Round(graphics.Clamp(alpha, 0, 1) * 0xff))})
	z.Draw(out, bounds, src, image.Point{})
	return out
}

func (c *Compositor) scale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}
