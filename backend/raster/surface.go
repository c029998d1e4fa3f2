// Package raster is a headless grid.Surface that paints into an
// *image.RGBA. It backs PNG snapshots and pixel-level tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/grid"
)

// Surface paints into an RGBA image. Coordinates are logical pixels
// scaled by the pixel ratio; glyphs are drawn at the face's native size.
type Surface struct {
	img    *image.RGBA
	face   font.Face
	ascent int
	ratio  float32

	clip  image.Rectangle
	clips []image.Rectangle

	frames int
}

// New creates a surface drawing text with face. A nil face uses
// basicfont.Face7x13.
func New(face font.Face) *Surface {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Surface{
		img:    image.NewRGBA(image.Rectangle{}),
		face:   face,
		ascent: face.Metrics().Ascent.Ceil(),
		ratio:  1,
	}
}

// Measurer returns a grid.Measurer matching the surface's face.
func (s *Surface) Measurer(name string) grid.FaceMeasurer {
	return grid.FaceMeasurer{Face: s.face, Name: name}
}

// Resize implements grid.Surface. The backing image is reallocated.
func (s *Surface) Resize(width, height, pixelRatio float32) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	s.ratio = pixelRatio
	w := int(math.Ceil(float64(width * pixelRatio)))
	h := int(math.Ceil(float64(height * pixelRatio)))
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.clip = s.img.Bounds()
	s.clips = s.clips[:0]
}

// Clear implements grid.Surface. It ignores the clip rect.
func (s *Surface) Clear(c uint32) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(toColor(c)), image.Point{}, draw.Src)
}

// FillRect implements grid.Surface.
func (s *Surface) FillRect(r grid.Rect, c uint32) {
	if c>>24 == 0 {
		return
	}
	px := s.toPixels(r).Intersect(s.clip)
	if px.Empty() {
		return
	}
	draw.Draw(s.img, px, image.NewUniform(toColor(c)), image.Point{}, draw.Over)
}

// Line implements grid.Surface. Axis-aligned lines are filled rects;
// other lines are stepped one pixel at a time.
func (s *Surface) Line(x1, y1, x2, y2 float32, c uint32, thickness float32) {
	t := max(thickness, 1/s.ratio)
	switch {
	case x1 == x2:
		s.FillRect(grid.Rect{X: x1 - t/2, Y: min(y1, y2), W: t, H: abs(y2 - y1)}, c)
	case y1 == y2:
		s.FillRect(grid.Rect{X: min(x1, x2), Y: y1 - t/2, W: abs(x2 - x1), H: t}, c)
	default:
		steps := int(max(abs(x2-x1), abs(y2-y1))*s.ratio) + 1
		for i := 0; i <= steps; i++ {
			f := float32(i) / float32(steps)
			x := x1 + (x2-x1)*f
			y := y1 + (y2-y1)*f
			s.FillRect(grid.Rect{X: x - t/2, Y: y - t/2, W: t, H: t}, c)
		}
	}
}

// Text implements grid.Surface.
func (s *Surface) Text(x, y float32, text string, c uint32) {
	if text == "" || c>>24 == 0 || s.clip.Empty() {
		return
	}
	dst, ok := s.img.SubImage(s.clip).(*image.RGBA)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toColor(c)),
		Face: s.face,
		Dot:  fixed.P(int(x*s.ratio), int(y*s.ratio)+s.ascent),
	}
	d.DrawString(text)
}

// PushClip implements grid.Surface.
func (s *Surface) PushClip(r grid.Rect) {
	s.clips = append(s.clips, s.clip)
	s.clip = s.clip.Intersect(s.toPixels(r))
}

// PopClip implements grid.Surface.
func (s *Surface) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clip = s.clips[n-1]
		s.clips = s.clips[:n-1]
	}
}

// Present implements grid.Surface. The image is complete once it returns.
func (s *Surface) Present() error {
	if len(s.clips) != 0 {
		return fmt.Errorf("present with %d unbalanced clip rects", len(s.clips))
	}
	s.frames++
	return nil
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Frames returns the number of presented frames.
func (s *Surface) Frames() int {
	return s.frames
}

// At returns the packed colour of the pixel under logical point (x, y).
func (s *Surface) At(x, y float32) uint32 {
	c := color.NRGBAModel.Convert(s.img.At(int(x*s.ratio), int(y*s.ratio))).(color.NRGBA)
	return grid.RGBA(c.R, c.G, c.B, c.A)
}

// WritePNG encodes the current image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// toPixels converts a logical rect to device pixels, rounding outwards.
func (s *Surface) toPixels(r grid.Rect) image.Rectangle {
	x0 := int(math.Floor(float64(r.X * s.ratio)))
	y0 := int(math.Floor(float64(r.Y * s.ratio)))
	x1 := int(math.Ceil(float64((r.X + r.W) * s.ratio)))
	y1 := int(math.Ceil(float64((r.Y + r.H) * s.ratio)))
	return image.Rect(x0, y0, x1, y1)
}

func toColor(c uint32) color.NRGBA {
	r, g, b, a := grid.UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
