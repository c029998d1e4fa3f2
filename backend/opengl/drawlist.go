package opengl

import (
	"math"
	"sync"
)

// Vertex represents a single vertex for rendering.
type Vertex struct {
	Pos      [2]float32 // Position in logical pixels
	TexCoord [2]float32 // Atlas coordinates
	Color    uint32     // RGBA packed color (0xAABBGGRR)
}

// DrawCmd is one indexed draw sharing a clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	VertexOffset uint32     // Base vertex for the indices
	IndexOffset  uint32     // Offset into the index buffer
}

// maxCmdVertices keeps command-relative indices within uint16.
const maxCmdVertices = math.MaxUint16

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 4096),
			IdxBuffer: make([]uint16, 0, 8192),
			CmdBuffer: make([]DrawCmd, 0, 64),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates one frame of geometry. Every primitive samples the
// same glyph atlas (solid fills use its white texel), so commands only
// split when the clip rectangle changes.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	cmdOffset    uint32 // Vertex offset of the open command
	idxCmdOffset uint32 // Index offset of the open command
	white        [2]float32
}

// Clear resets the DrawList, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetWhiteTexel sets the atlas coordinate sampled by solid fills.
func (dl *DrawList) SetWhiteTexel(u, v float32) {
	dl.white = [2]float32{u, v}
}

// PushClipRect intersects the clip rectangle with (x1, y1)-(x2, y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{
		max(c[0], x1), max(c[1], y1),
		min(c[2], x2), min(c[3], y2),
	}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// splitDraw finalizes the open command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends four vertices and two triangles.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 || uint32(len(dl.VtxBuffer))-dl.cmdOffset+4 > maxCmdVertices {
		dl.splitDraw()
	}
	idx := uint16(uint32(len(dl.VtxBuffer)) - dl.cmdOffset)
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	uv := dl.white
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: uv, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: uv, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: uv, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: uv, Color: color},
	)
}

// AddLine draws a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	uv := dl.white
	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, TexCoord: uv, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, TexCoord: uv, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, TexCoord: uv, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, TexCoord: uv, Color: color},
	)
}

// GlyphQuad is one character's screen and atlas rectangle.
type GlyphQuad struct {
	X0, Y0 float32 // Screen top-left
	X1, Y1 float32 // Screen bottom-right
	U0, V0 float32 // Atlas top-left
	U1, V1 float32 // Atlas bottom-right
}

// AddGlyphQuads draws glyph quads with the specified color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// Finalize closes the open command and drops empty ones.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
