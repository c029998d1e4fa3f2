package grid

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
)

// Config is the inbound configuration of an engine.
type Config struct {
	HeaderHeight float32 // Height of the header band (default 40)
	RowHeight    float32 // Height of every data row (default 30)
	ShowEllipsis bool    // Single-line ellipsis mode instead of wrapping
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{HeaderHeight: 40, RowHeight: 30}
}

// normalized replaces non-positive heights with their defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.HeaderHeight <= 0 {
		c.HeaderHeight = def.HeaderHeight
	}
	if c.RowHeight <= 0 {
		c.RowHeight = def.RowHeight
	}
	return c
}

// ContextMenuEvent is emitted when a context menu is requested over a
// valid cell.
type ContextMenuEvent struct {
	Cell  Cell
	Event PointerEvent
}

// Engine is a virtualized grid bound to one drawing surface.
//
// An engine is not safe for concurrent use: every method must be called
// from the goroutine that delivers input and drives Frame.
type Engine struct {
	surface Surface
	measure *measureCache
	host    Host
	style   Style
	config  Config
	log     *slog.Logger
	clock   func() time.Time
	sched   redrawScheduler

	data      DataSource
	columns   []ColumnDescriptor
	overrides map[int]float32 // Manually resized widths by column index
	minWidths []float32       // Measured minimums, grow-only
	widths    ColumnWidths

	vp         Viewport
	pixelRatio float32
	state      InteractionState

	surfaceSize  Vec2
	surfaceRatio float32

	onContextMenu func(ContextMenuEvent)
	menu          *Menu
	onMenuSelect  func(key string)
	clipboard     Clipboard

	releaseCapture func()
	stopResize     func()
	closed         bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the initial configuration.
func WithConfig(c Config) Option {
	return func(e *Engine) { e.config = c.normalized() }
}

// WithStyle sets the visual style.
func WithStyle(s Style) Option {
	return func(e *Engine) { e.style = s }
}

// WithHost sets the host that provides pointer capture and container
// resize observation.
func WithHost(h Host) Option {
	return func(e *Engine) {
		if h != nil {
			e.host = h
		}
	}
}

// WithLogger sets the base logger. The engine adds its own id attribute.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock overrides the time source used by the redraw scheduler.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// WithContextMenu registers the consumer of context-menu notifications.
func WithContextMenu(fn func(ContextMenuEvent)) Option {
	return func(e *Engine) { e.onContextMenu = fn }
}

// WithMenu attaches a popup menu drawn above the grid. While it is open
// it receives pointer input first; onSelect is called with the key of a
// chosen leaf.
func WithMenu(m *Menu, onSelect func(key string)) Option {
	return func(e *Engine) {
		e.menu = m
		e.onMenuSelect = onSelect
	}
}

// WithThrottle sets the window that coalesces wheel and resize redraws.
func WithThrottle(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.sched.window = d
		}
	}
}

// New creates an engine painting into surface. measurer may be nil until
// a font is available; widths then fall back to the column minimum.
func New(surface Surface, measurer Measurer, opts ...Option) *Engine {
	e := &Engine{
		surface:    surface,
		measure:    newMeasureCache(measurer),
		host:       nopHost{},
		style:      DefaultStyle(),
		config:     DefaultConfig(),
		log:        gridLogger,
		clock:      time.Now,
		sched:      redrawScheduler{window: DefaultThrottle},
		overrides:  make(map[int]float32),
		pixelRatio: 1,
		state:      InteractionState{SelectedRow: NoRow, HoveredRow: NoRow},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = e.log.With("engine", ulid.Make().String())
	e.applyConfig()
	e.stopResize = e.host.ObserveResize(e.SetContainerSize)
	e.sched.request()
	return e
}

// SetData replaces the row sequence. Selection and hover are cleared when
// they no longer index a row, and measured minimum widths start over.
func (e *Engine) SetData(ds DataSource) {
	e.data = ds
	e.vp.RowCount = rowCount(ds)
	e.minWidths = nil
	e.validateRows()
	e.vp.Clamp()
	e.recomputeWidths()
	if gridVerbose() {
		e.log.Debug("data replaced", "rows", e.vp.RowCount)
	}
	e.sched.request()
}

// SetColumns replaces the column descriptors and drops manual resizes.
func (e *Engine) SetColumns(columns []ColumnDescriptor) {
	if e.state.Mode == ModeResizingColumn {
		e.endDrag()
	}
	e.columns = slices.Clone(columns)
	clear(e.overrides)
	e.minWidths = nil
	e.recomputeWidths()
	if gridVerbose() {
		e.log.Debug("columns replaced", "columns", len(columns))
	}
	e.sched.request()
}

// SetConfig replaces the configuration.
func (e *Engine) SetConfig(c Config) {
	e.config = c.normalized()
	e.applyConfig()
	e.sched.request()
}

// SetMeasurer swaps the measurement context. Cached widths and measured
// minimums are discarded since they were taken with another font.
func (e *Engine) SetMeasurer(m Measurer) {
	e.measure.setMeasurer(m)
	e.minWidths = nil
	e.recomputeWidths()
	e.sched.request()
}

// SetContainerSize sets the observed size of the container. Redraws are
// throttled since resize events arrive in bursts.
func (e *Engine) SetContainerSize(width, height float32) {
	if width == e.vp.ContainerWidth && height == e.vp.ContainerHeight {
		return
	}
	e.vp.ContainerWidth = width
	e.vp.ContainerHeight = height
	e.recomputeWidths()
	e.sched.requestThrottled()
}

// SetPixelRatio sets the device pixel ratio. Non-positive ratios mean 1.
func (e *Engine) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	if ratio == e.pixelRatio {
		return
	}
	e.pixelRatio = ratio
	e.syncSurface()
	e.sched.request()
}

// SetStyle replaces the style.
func (e *Engine) SetStyle(s Style) {
	e.style = s
	e.recomputeWidths()
	e.sched.request()
}

// RequestRedraw schedules a paint at the next frame.
func (e *Engine) RequestRedraw() {
	e.sched.request()
}

// ResetColumnWidth drops a manual resize of column i.
func (e *Engine) ResetColumnWidth(i int) {
	if _, ok := e.overrides[i]; !ok {
		return
	}
	delete(e.overrides, i)
	e.recomputeWidths()
	e.sched.request()
}

// ScrollToRow scrolls the minimum distance that makes row i fully visible.
func (e *Engine) ScrollToRow(i int) {
	top := e.vp.VisibleRows().ScrollToItem(i, e.vp.ScrollTop, e.vp.ViewportHeight())
	if e.vp.SetScrollTop(top) {
		e.scrolled()
		e.sched.request()
	}
}

// ScrollTo sets both scroll offsets, clamped. The vertical offset goes
// first so left is clamped against widths measured for the new rows.
func (e *Engine) ScrollTo(left, top float32) {
	changed := false
	if e.vp.SetScrollTop(top) {
		e.scrolled()
		changed = true
	}
	if e.vp.SetScrollLeft(left) {
		changed = true
	}
	if changed {
		e.sched.request()
	}
}

// Select sets the selected row. An index outside the data clears it.
func (e *Engine) Select(row int) {
	if row < 0 || row >= e.vp.RowCount {
		row = NoRow
	}
	if row != e.state.SelectedRow {
		e.state.SelectedRow = row
		e.sched.request()
	}
}

// Frame paints if a redraw is due. It reports whether a paint happened.
// Call it once per animation frame.
func (e *Engine) Frame() (bool, error) {
	if e.closed || e.surface == nil {
		return false, nil
	}
	now := e.clock()
	if !e.sched.due(now) {
		return false, nil
	}
	e.sched.painted(now)
	if e.surfaceSize.X <= 0 || e.surfaceSize.Y <= 0 {
		return false, nil
	}
	e.render()
	if err := e.surface.Present(); err != nil {
		return true, fmt.Errorf("present frame: %w", err)
	}
	return true, nil
}

// Close releases pointer capture and stops resize observation. It is
// safe to call more than once.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if e.releaseCapture != nil {
		e.releaseCapture()
		e.releaseCapture = nil
	}
	if e.stopResize != nil {
		e.stopResize()
		e.stopResize = nil
	}
	e.state.Mode = ModeIdle
	e.log.Debug("engine closed")
}

// Viewport returns a copy of the scroll model.
func (e *Engine) Viewport() Viewport {
	return e.vp
}

// Interaction returns a copy of the interaction state.
func (e *Engine) Interaction() InteractionState {
	return e.state
}

// Mode returns the current interaction mode.
func (e *Engine) Mode() Mode {
	return e.state.Mode
}

// Widths returns the resolved column widths.
func (e *Engine) Widths() ColumnWidths {
	return ColumnWidths{Widths: slices.Clone(e.widths.Widths), Total: e.widths.Total}
}

// Columns returns the column descriptors.
func (e *Engine) Columns() []ColumnDescriptor {
	return slices.Clone(e.columns)
}

// VisibleRows returns the window of rows painted at the current scroll.
func (e *Engine) VisibleRows() *ListClipper {
	return e.vp.VisibleRows()
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return e.config
}

// PointerToCell resolves a viewport coordinate to a valid cell. It reports
// false over the header, outside the container, past the last column and
// below the last row.
func (e *Engine) PointerToCell(x, y float32) (Cell, bool) {
	hit, ok := e.hitCell(x, y)
	if !ok {
		return Cell{}, false
	}
	return e.cell(hit.RowIndex, hit.ColumnIndex), true
}

// cell resolves (row, col); both must already be in range.
func (e *Engine) cell(row, col int) Cell {
	c := Cell{RowIndex: row, ColumnIndex: col, Row: e.data.Row(row), Column: e.columns[col]}
	if c.Row != nil {
		c.Value = c.Row.Field(c.Column.Key)
	}
	return c
}

// hitCell is HitCell with the bounds checks consumers must apply.
func (e *Engine) hitCell(x, y float32) (CellHit, bool) {
	if x < 0 || x >= e.vp.ContainerWidth || y >= e.vp.ContainerHeight {
		return CellHit{}, false
	}
	hit, ok := HitCell(e.vp, e.widths, x, y)
	if !ok || hit.RowIndex < 0 || hit.RowIndex >= e.vp.RowCount || hit.ColumnIndex >= len(e.columns) {
		return CellHit{}, false
	}
	return hit, true
}

func (e *Engine) applyConfig() {
	e.vp.HeaderHeight = e.config.HeaderHeight
	e.vp.RowHeight = e.config.RowHeight
	e.vp.Clamp()
	e.recomputeWidths()
}

// effectiveColumns returns the descriptors with manual resizes applied as
// fixed widths.
func (e *Engine) effectiveColumns() []ColumnDescriptor {
	if len(e.overrides) == 0 {
		return e.columns
	}
	cols := slices.Clone(e.columns)
	for i, w := range e.overrides {
		if i < len(cols) {
			cols[i].Width = w
		}
	}
	return cols
}

// recomputeWidths re-derives column widths from the descriptors, the
// visible window and the container width, then re-clamps scrolling and
// resizes the surface if its size changed. It does not request a redraw;
// callers decide between an immediate and a throttled one.
//
// Minimums are measured on the descriptors without manual resizes so a
// reset column gets back the minimum it had grown to.
func (e *Engine) recomputeWidths() {
	cols := e.effectiveColumns()
	clip := e.vp.VisibleRows()

	var m Measurer
	if e.measure.available() {
		m = e.measure
	}
	e.minWidths = MeasureMinWidths(m, e.columns, e.data, clip.StartIdx, clip.EndIdx, e.minWidths)
	e.vp.ScrollbarSize = e.style.ScrollbarSize

	// The vertical bar can appear once the horizontal one takes its
	// height, so resolve again when the reserve turns out wrong.
	for range 2 {
		reserve := e.vp.barIf(e.vp.VerticalOverflow())
		e.widths = ResolveWidths(cols, e.minWidths, e.vp.ContainerWidth, reserve)
		e.vp.TotalWidth = e.widths.Total
		if e.vp.barIf(e.vp.VerticalOverflow()) == reserve {
			break
		}
	}
	e.vp.Clamp()
	e.syncSurface()
}

// scrolled is called after ScrollTop changes. The visible window moved,
// so newly visible content may widen flexible columns.
func (e *Engine) scrolled() {
	e.recomputeWidths()
}

// syncSurface resizes the surface to max(totalWidth, containerWidth) x
// containerHeight at the current pixel ratio. Degenerate sizes are
// skipped.
func (e *Engine) syncSurface() {
	size := e.vp.SurfaceSize()
	if size == e.surfaceSize && e.pixelRatio == e.surfaceRatio {
		return
	}
	if size.X <= 0 || size.Y <= 0 {
		if e.vp.ContainerWidth != 0 || e.vp.ContainerHeight != 0 {
			e.log.Warn("skipping surface resize", "width", size.X, "height", size.Y)
		}
		return
	}
	if e.surface != nil {
		e.surface.Resize(size.X, size.Y, e.pixelRatio)
	}
	e.surfaceSize = size
	e.surfaceRatio = e.pixelRatio
	if gridVerbose() {
		e.log.Debug("surface resized", "width", size.X, "height", size.Y, "ratio", e.pixelRatio)
	}
}

// validateRows clears row indexes that no longer address a row.
func (e *Engine) validateRows() {
	if e.state.SelectedRow >= e.vp.RowCount {
		e.state.SelectedRow = NoRow
	}
	if e.state.HoveredRow >= e.vp.RowCount {
		e.state.HoveredRow = NoRow
		e.state.Tooltip = Tooltip{}
	}
}
