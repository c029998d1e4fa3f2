package grid

// Surface is the single drawing surface an engine paints into.
//
// Coordinates are logical pixels; implementations scale by the pixel ratio
// passed to Resize. Primitives are clipped to the innermost clip rect.
type Surface interface {
	// Resize sets the logical size and device pixel ratio. The contents
	// are undefined afterwards until the next full paint.
	Resize(width, height, pixelRatio float32)

	// Clear fills the whole surface with color.
	Clear(color uint32)

	// FillRect draws a filled rectangle.
	FillRect(r Rect, color uint32)

	// Line draws a straight line.
	Line(x1, y1, x2, y2 float32, color uint32, thickness float32)

	// Text draws a single line of text with its top-left corner at (x, y).
	Text(x, y float32, text string, color uint32)

	// PushClip intersects the clip rect with r until the matching PopClip.
	PushClip(r Rect)

	// PopClip restores the previous clip rect.
	PopClip()

	// Present flushes the frame.
	Present() error
}

// Host is the environment an engine is mounted in. It provides the
// window-level listeners that must only exist while they are needed.
type Host interface {
	// CapturePointer routes pointer moves and releases anywhere on screen
	// to the engine until release is called.
	CapturePointer() (release func())

	// ObserveResize reports container size changes until stop is called.
	ObserveResize(fn func(width, height float32)) (stop func())
}

// nopHost is used when the engine is created without a host.
type nopHost struct{}

func (nopHost) CapturePointer() func()                  { return func() {} }
func (nopHost) ObserveResize(func(w, h float32)) func() { return func() {} }
