package opengl

import (
	"fmt"

	"github.com/go-theft-auto/grid"
)

// Surface implements grid.Surface on top of a Renderer. Primitives are
// batched into a DrawList and drawn on Present.
type Surface struct {
	renderer *Renderer
	atlas    *Atlas
	dl       *DrawList
	quads    []GlyphQuad

	width, height float32
	ratio         float32
	clear         uint32
}

// NewSurface creates a surface drawing text from atlas. The atlas must be
// the one the renderer was created with.
func NewSurface(renderer *Renderer, atlas *Atlas) *Surface {
	s := &Surface{
		renderer: renderer,
		atlas:    atlas,
		dl:       AcquireDrawList(),
		ratio:    1,
	}
	s.dl.SetWhiteTexel(atlas.white[0], atlas.white[1])
	return s
}

// Resize implements grid.Surface.
func (s *Surface) Resize(width, height, pixelRatio float32) {
	s.width, s.height, s.ratio = width, height, pixelRatio
	s.dl.Clear()
}

// Clear implements grid.Surface.
func (s *Surface) Clear(color uint32) {
	s.clear = color
	s.dl.Clear()
}

// FillRect implements grid.Surface.
func (s *Surface) FillRect(r grid.Rect, color uint32) {
	s.dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

// Line implements grid.Surface.
func (s *Surface) Line(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	// Axis-aligned hairlines are snapped to pixel centres.
	if x1 == x2 {
		x1 = float32(int(x1)) + 0.5
		x2 = x1
	}
	if y1 == y2 {
		y1 = float32(int(y1)) + 0.5
		y2 = y1
	}
	s.dl.AddLine(x1, y1, x2, y2, color, thickness)
}

// Text implements grid.Surface.
func (s *Surface) Text(x, y float32, text string, color uint32) {
	s.quads = s.atlas.AppendQuads(s.quads[:0], x, y, text)
	s.dl.AddGlyphQuads(s.quads, color)
}

// PushClip implements grid.Surface.
func (s *Surface) PushClip(r grid.Rect) {
	s.dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// PopClip implements grid.Surface.
func (s *Surface) PopClip() {
	s.dl.PopClipRect()
}

// Present implements grid.Surface.
func (s *Surface) Present() error {
	if s.width <= 0 || s.height <= 0 {
		return nil
	}
	if err := s.renderer.Render(s.dl, s.clear, s.width, s.height, s.ratio); err != nil {
		return fmt.Errorf("render %vx%v@%v: %w", s.width, s.height, s.ratio, err)
	}
	return nil
}

// Delete returns the draw list to the pool.
func (s *Surface) Delete() {
	ReleaseDrawList(s.dl)
	s.dl = nil
}
