package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/grid"
)

// WheelLinePixels converts one wheel notch into pixels.
const WheelLinePixels = 40

// GLFWHost adapts a GLFW window to grid.Host and forwards window input to
// an engine.
//
// GLFW keeps reporting cursor positions and the button release while a
// button is held, even outside the window, which is what pointer capture
// needs. While no capture is held, moves outside the window are dropped
// and leaving the window is reported as PointerLeave.
type GLFWHost struct {
	window   *glfw.Window
	engine   *grid.Engine
	captures int
	onResize func(w, h float32)
	cursor   grid.Vec2
}

// NewGLFWHost creates a host for window. Call Attach once the engine has
// been created with this host.
func NewGLFWHost(window *glfw.Window) *GLFWHost {
	return &GLFWHost{window: window}
}

// Attach routes the window's input callbacks to e.
func (h *GLFWHost) Attach(e *grid.Engine) {
	h.engine = e
	h.window.SetCursorPosCallback(h.cursorPosCallback)
	h.window.SetCursorEnterCallback(h.cursorEnterCallback)
	h.window.SetMouseButtonCallback(h.mouseButtonCallback)
	h.window.SetScrollCallback(h.scrollCallback)
	h.window.SetKeyCallback(h.keyCallback)
	h.window.SetContentScaleCallback(h.contentScaleCallback)
	e.SetPixelRatio(h.PixelRatio())
}

// Detach removes the input callbacks.
func (h *GLFWHost) Detach() {
	h.window.SetCursorPosCallback(nil)
	h.window.SetCursorEnterCallback(nil)
	h.window.SetMouseButtonCallback(nil)
	h.window.SetScrollCallback(nil)
	h.window.SetKeyCallback(nil)
	h.window.SetContentScaleCallback(nil)
	h.engine = nil
}

// CapturePointer implements grid.Host.
func (h *GLFWHost) CapturePointer() func() {
	h.captures++
	released := false
	return func() {
		if !released {
			released = true
			h.captures--
		}
	}
}

// Captured reports whether any pointer capture is held.
func (h *GLFWHost) Captured() bool {
	return h.captures > 0
}

// ObserveResize implements grid.Host. fn is called with the current size
// immediately and on every window resize until stop is called.
func (h *GLFWHost) ObserveResize(fn func(w, h float32)) func() {
	h.onResize = fn
	h.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		if h.onResize != nil {
			h.onResize(float32(width), float32(height))
		}
	})
	w, ht := h.window.GetSize()
	fn(float32(w), float32(ht))
	return func() {
		h.window.SetSizeCallback(nil)
		h.onResize = nil
	}
}

// SetText implements grid.Clipboard with the window's clipboard.
func (h *GLFWHost) SetText(text string) {
	h.window.SetClipboardString(text)
}

// PixelRatio returns framebuffer pixels per window coordinate.
func (h *GLFWHost) PixelRatio() float32 {
	w, _ := h.window.GetSize()
	fw, _ := h.window.GetFramebufferSize()
	if w <= 0 || fw <= 0 {
		return 1
	}
	return float32(fw) / float32(w)
}

func (h *GLFWHost) inside(x, y float32) bool {
	w, ht := h.window.GetSize()
	return x >= 0 && y >= 0 && x < float32(w) && y < float32(ht)
}

func (h *GLFWHost) cursorPosCallback(_ *glfw.Window, x, y float64) {
	h.cursor = grid.Vec2{X: float32(x), Y: float32(y)}
	if h.engine == nil || (!h.Captured() && !h.inside(h.cursor.X, h.cursor.Y)) {
		return
	}
	h.engine.PointerMove(grid.PointerEvent{X: h.cursor.X, Y: h.cursor.Y, Mods: h.mods()})
}

func (h *GLFWHost) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if h.engine != nil && !entered {
		h.engine.PointerLeave()
	}
}

func (h *GLFWHost) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if h.engine == nil {
		return
	}
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	ev := grid.PointerEvent{X: h.cursor.X, Y: h.cursor.Y, Button: b, Mods: glfwMods(mods)}

	switch action {
	case glfw.Press:
		h.engine.PointerDown(ev)
		if b == grid.MouseButtonRight {
			h.engine.ContextMenu(ev)
		}
	case glfw.Release:
		h.engine.PointerUp(ev)
	}
}

// scrollCallback converts wheel notches to pixels. GLFW reports positive
// y when the wheel moves away from the user, which scrolls content up.
func (h *GLFWHost) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	if h.engine == nil {
		return
	}
	h.engine.Wheel(grid.WheelEvent{
		X:      h.cursor.X,
		Y:      h.cursor.Y,
		DeltaX: float32(-xoff) * WheelLinePixels,
		DeltaY: float32(-yoff) * WheelLinePixels,
		Mods:   h.mods(),
	})
}

func (h *GLFWHost) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if h.engine == nil || action == glfw.Release {
		return
	}
	if key == glfw.KeyC && glfwMods(mods)&(grid.ModCtrl|grid.ModSuper) != 0 {
		h.engine.CopySelection()
		return
	}
	if k := glfwKey(key); k != grid.KeyNone {
		h.engine.KeyPress(k)
	}
}

func (h *GLFWHost) contentScaleCallback(_ *glfw.Window, _, _ float32) {
	if h.engine != nil {
		h.engine.SetPixelRatio(h.PixelRatio())
	}
}

func (h *GLFWHost) mods() grid.Modifiers {
	var m grid.Modifiers
	pressed := func(a, b glfw.Key) bool {
		return h.window.GetKey(a) == glfw.Press || h.window.GetKey(b) == glfw.Press
	}
	if pressed(glfw.KeyLeftShift, glfw.KeyRightShift) {
		m |= grid.ModShift
	}
	if pressed(glfw.KeyLeftControl, glfw.KeyRightControl) {
		m |= grid.ModCtrl
	}
	if pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		m |= grid.ModAlt
	}
	if pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		m |= grid.ModSuper
	}
	return m
}

func glfwMods(mods glfw.ModifierKey) grid.Modifiers {
	var m grid.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= grid.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= grid.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= grid.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= grid.ModSuper
	}
	return m
}

// glfwKey maps GLFW keys to grid keys.
func glfwKey(key glfw.Key) grid.Key {
	switch key {
	case glfw.KeyUp:
		return grid.KeyUp
	case glfw.KeyDown:
		return grid.KeyDown
	case glfw.KeyPageUp:
		return grid.KeyPageUp
	case glfw.KeyPageDown:
		return grid.KeyPageDown
	case glfw.KeyHome:
		return grid.KeyHome
	case glfw.KeyEnd:
		return grid.KeyEnd
	case glfw.KeyEscape:
		return grid.KeyEscape
	default:
		return grid.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons to grid buttons.
func glfwMouseButton(button glfw.MouseButton) (grid.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return grid.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return grid.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return grid.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
