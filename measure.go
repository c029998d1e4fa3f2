package grid

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
)

// Measurer is the font-aware text-width function used for layout.
//
// All measurements in one batch must come from the same font: widths taken
// under different fonts are not comparable, and cached widths are keyed by
// FontKey so a font change never reuses stale values.
type Measurer interface {
	// FontKey identifies the font the measurer uses (e.g. "14px monospace").
	FontKey() string

	// MeasureText returns the advance width of text in pixels.
	MeasureText(text string) float32
}

// CellMeasurer measures text on a fixed advance grid. Each rune occupies
// its East-Asian display width in cells, so CJK ideographs count double.
// This matches monospace bitmap fonts and keeps tests deterministic.
type CellMeasurer struct {
	Advance float32 // Width of one cell in pixels
	Name    string  // Font key; defaults to "cell"
}

// FontKey implements Measurer.
func (m CellMeasurer) FontKey() string {
	if m.Name == "" {
		return "cell"
	}
	return m.Name
}

// MeasureText implements Measurer.
func (m CellMeasurer) MeasureText(text string) float32 {
	return float32(runewidth.StringWidth(text)) * m.Advance
}

// FaceMeasurer measures text with a font face from golang.org/x/image.
type FaceMeasurer struct {
	Face font.Face
	Name string
}

// FontKey implements Measurer.
func (m FaceMeasurer) FontKey() string {
	return m.Name
}

// MeasureText implements Measurer.
func (m FaceMeasurer) MeasureText(text string) float32 {
	if m.Face == nil {
		return 0
	}
	adv := font.MeasureString(m.Face, text)
	return float32(adv) / 64
}

// maxCachedWidths bounds the measurement cache. Scrolling through a million
// rows would otherwise retain every distinct cell string ever seen.
const maxCachedWidths = 16 << 10

type measureKey struct {
	font string
	text string
}

// measureCache memoizes text widths per engine instance, keyed by
// (font, text). It is the only memoized state in the engine.
type measureCache struct {
	measurer Measurer
	widths   map[measureKey]float32
}

func newMeasureCache(m Measurer) *measureCache {
	return &measureCache{
		measurer: m,
		widths:   make(map[measureKey]float32),
	}
}

// available reports whether a measurement context exists.
func (c *measureCache) available() bool {
	return c != nil && c.measurer != nil
}

// width returns the measured width of text. Without a measurer it returns
// 0 so callers fall back to their safe defaults.
func (c *measureCache) width(text string) float32 {
	if !c.available() || text == "" {
		return 0
	}
	key := measureKey{font: c.measurer.FontKey(), text: text}
	if w, ok := c.widths[key]; ok {
		return w
	}
	if len(c.widths) >= maxCachedWidths {
		clear(c.widths)
	}
	w := c.measurer.MeasureText(text)
	c.widths[key] = w
	return w
}

// FontKey implements Measurer so the cache can stand in for its measurer.
func (c *measureCache) FontKey() string {
	if !c.available() {
		return ""
	}
	return c.measurer.FontKey()
}

// MeasureText implements Measurer.
func (c *measureCache) MeasureText(text string) float32 {
	return c.width(text)
}

// setMeasurer swaps the measurement context and drops every cached width.
func (c *measureCache) setMeasurer(m Measurer) {
	c.measurer = m
	clear(c.widths)
}

func (c *measureCache) len() int {
	return len(c.widths)
}
