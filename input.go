package grid

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all modifiers in m are held.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// PointerEvent is a pointer press, release or move in viewport
// coordinates (logical pixels, origin at the container's top-left).
type PointerEvent struct {
	X, Y   float32
	Button MouseButton
	Mods   Modifiers
}

// Pos returns the pointer position.
func (e PointerEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// WheelEvent is a wheel or trackpad scroll. Deltas are in pixels and
// positive values scroll content towards higher offsets.
type WheelEvent struct {
	X, Y           float32
	DeltaX, DeltaY float32
	Mods           Modifiers
}

// Key represents a keyboard key the grid reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
)
