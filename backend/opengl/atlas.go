package opengl

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	atlasColumns = 16
	firstGlyph   = ' '
	lastGlyph    = '~'
)

type glyph struct {
	u0, v0, u1, v1 float32
	x0, y0, x1, y1 float32 // Quad relative to the line's top-left
	advance        float32
}

// Atlas is an alpha-only texture holding the printable ASCII glyphs of a
// fixed-size face, plus a white texel used by solid fills.
type Atlas struct {
	Width, Height int
	Pixels        []byte // One alpha byte per texel, row-major

	white      [2]float32
	glyphs     map[rune]glyph
	lineHeight float32
}

// NewAtlas rasterises the printable ASCII range of face.
func NewAtlas(face font.Face) *Atlas {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellH := m.Height.Ceil()
	cellW := 0
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		if adv, ok := face.GlyphAdvance(r); ok && adv.Ceil() > cellW {
			cellW = adv.Ceil()
		}
	}
	cellW += 2 // Keep neighbouring glyphs from bleeding under linear filtering

	cells := int(lastGlyph-firstGlyph) + 2 // White cell first
	rows := (cells + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))

	a := &Atlas{
		Width:      img.Rect.Dx(),
		Height:     img.Rect.Dy(),
		glyphs:     make(map[rune]glyph, cells),
		lineHeight: float32(cellH),
	}

	// White texel block in cell 0.
	draw.Draw(img, image.Rect(0, 0, 2, 2), image.Opaque, image.Point{}, draw.Src)
	a.white = [2]float32{1 / float32(a.Width), 1 / float32(a.Height)}

	for i, r := 1, rune(firstGlyph); r <= lastGlyph; i, r = i+1, r+1 {
		cellX := (i % atlasColumns) * cellW
		cellY := (i / atlasColumns) * cellH
		dot := fixed.P(cellX, cellY+ascent)

		dr, mask, maskp, adv, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.Draw(img, dr, mask, maskp, draw.Src)

		a.glyphs[r] = glyph{
			u0:      float32(dr.Min.X) / float32(a.Width),
			v0:      float32(dr.Min.Y) / float32(a.Height),
			u1:      float32(dr.Max.X) / float32(a.Width),
			v1:      float32(dr.Max.Y) / float32(a.Height),
			x0:      float32(dr.Min.X - cellX),
			y0:      float32(dr.Min.Y - cellY),
			x1:      float32(dr.Max.X - cellX),
			y1:      float32(dr.Max.Y - cellY),
			advance: float32(adv) / 64,
		}
	}

	a.Pixels = img.Pix
	return a
}

// LineHeight returns the height of one line of text.
func (a *Atlas) LineHeight() float32 {
	return a.lineHeight
}

// AppendQuads appends the quads for text with its top-left at (x, y).
// Runes outside the atlas are drawn with an ASCII stand-in.
func (a *Atlas) AppendQuads(quads []GlyphQuad, x, y float32, text string) []GlyphQuad {
	pen := x
	for _, r := range text {
		g, ok := a.glyphs[fallbackRune(r)]
		if !ok {
			g = a.glyphs['?']
		}
		if g.x1 > g.x0 {
			quads = append(quads, GlyphQuad{
				X0: pen + g.x0, Y0: y + g.y0,
				X1: pen + g.x1, Y1: y + g.y1,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		pen += g.advance
	}
	return quads
}

// fallbackRune maps common symbols to ASCII equivalents.
func fallbackRune(r rune) rune {
	if r >= firstGlyph && r <= lastGlyph {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '—', '–':
		return '-'
	case '…':
		return '.'
	default:
		return '?'
	}
}
