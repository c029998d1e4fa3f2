package grid

import "slices"

// MenuItem is a node of a context menu tree. An item with children opens
// a submenu; a leaf is selectable.
type MenuItem struct {
	Key       string
	Label     string
	Disabled  bool
	Separator bool
	Children  []MenuItem
}

// IsSubmenu reports whether the item opens a nested menu.
func (it MenuItem) IsSubmenu() bool {
	return len(it.Children) > 0
}

// Menu is a nested popup menu.
//
// Which submenus are open is tracked as a single path of keys from the
// root rather than a flag on each node, so replacing the item tree can
// never leave an orphaned submenu open: SetItems keeps only the prefix of
// the path that still resolves.
type Menu struct {
	items    []MenuItem
	style    Style
	open     bool
	origin   Vec2
	bounds   Vec2
	openPath []string
	hovered  []string
}

type menuPanel struct {
	items  []MenuItem
	rect   Rect
	prefix []string
}

// NewMenu creates a closed menu.
func NewMenu(items []MenuItem, style Style) *Menu {
	return &Menu{items: items, style: style}
}

// SetItems replaces the item tree and prunes the open path.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = items
	m.openPath = resolvablePrefix(items, m.openPath)
	m.hovered = nil
}

// Open shows the menu with its top-left corner at p. bounds is the size
// of the container the menu must stay inside.
func (m *Menu) Open(p, bounds Vec2) {
	m.open = true
	m.origin = p
	m.bounds = bounds
	m.openPath = nil
	m.hovered = nil
}

// Close hides the menu.
func (m *Menu) Close() {
	m.open = false
	m.openPath = nil
	m.hovered = nil
}

// IsOpen reports whether the menu is shown.
func (m *Menu) IsOpen() bool {
	return m.open
}

// OpenPath returns the keys of the open submenus from the root.
func (m *Menu) OpenPath() []string {
	return slices.Clone(m.openPath)
}

// PointerMove updates hover. Hovering a submenu opens it; hovering a leaf
// closes any submenu deeper than the leaf's panel. It reports whether
// anything changed.
func (m *Menu) PointerMove(p Vec2) bool {
	if !m.open {
		return false
	}
	panel, item, ok := m.hit(p)
	if !ok {
		changed := m.hovered != nil
		m.hovered = nil
		return changed
	}

	it := panel.items[item]
	path := append(slices.Clone(panel.prefix), it.Key)
	changed := !slices.Equal(path, m.hovered)
	m.hovered = path

	next := panel.prefix
	if it.IsSubmenu() && !it.Disabled {
		next = path
	}
	if !slices.Equal(next, m.openPath) {
		m.openPath = slices.Clone(next)
		changed = true
	}
	return changed
}

// PointerDown handles a press. It returns the key of a selected leaf
// (closing the menu) and whether the press landed inside the menu. A
// press outside closes the menu.
func (m *Menu) PointerDown(p Vec2) (key string, inside bool) {
	if !m.open {
		return "", false
	}
	panel, item, ok := m.hit(p)
	if !ok {
		m.Close()
		return "", false
	}
	it := panel.items[item]
	switch {
	case it.Disabled || it.Separator:
		return "", true
	case it.IsSubmenu():
		m.openPath = append(slices.Clone(panel.prefix), it.Key)
		return "", true
	default:
		m.Close()
		return it.Key, true
	}
}

// Draw paints every open panel. Nothing is drawn while closed.
func (m *Menu) Draw(s Surface) {
	if !m.open {
		return
	}
	st := m.style
	for _, panel := range m.layout() {
		r := panel.rect
		s.FillRect(r, st.MenuBgColor)
		s.Line(r.X, r.Y, r.X+r.W, r.Y, st.MenuSeparatorColor, 1)
		s.Line(r.X, r.Y+r.H, r.X+r.W, r.Y+r.H, st.MenuSeparatorColor, 1)
		s.Line(r.X, r.Y, r.X, r.Y+r.H, st.MenuSeparatorColor, 1)
		s.Line(r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, st.MenuSeparatorColor, 1)

		for i, it := range panel.items {
			y := r.Y + float32(i)*st.MenuItemHeight
			if it.Separator {
				mid := y + st.MenuItemHeight/2
				s.Line(r.X+4, mid, r.X+r.W-4, mid, st.MenuSeparatorColor, 1)
				continue
			}
			path := append(slices.Clone(panel.prefix), it.Key)
			if slices.Equal(path, m.hovered) || isPrefix(path, m.openPath) {
				s.FillRect(Rect{X: r.X, Y: y, W: r.W, H: st.MenuItemHeight}, st.MenuHoveredColor)
			}
			color := st.MenuTextColor
			if it.Disabled {
				color = st.MenuDisabledColor
			}
			textY := y + (st.MenuItemHeight-st.TextHeight)/2
			s.Text(r.X+st.CellPaddingX, textY, it.Label, color)
			if it.IsSubmenu() {
				s.Text(r.X+r.W-st.CellPaddingX-8, textY, ">", color)
			}
		}
	}
}

// layout positions the root panel and one panel per open submenu, each to
// the right of its parent and aligned with the item that opened it.
func (m *Menu) layout() []menuPanel {
	st := m.style
	var panels []menuPanel
	items := m.items
	origin := m.origin
	var prefix []string

	for depth := 0; ; depth++ {
		r := Rect{X: origin.X, Y: origin.Y, W: st.MenuWidth, H: float32(len(items)) * st.MenuItemHeight}
		if m.bounds.X > 0 && r.X+r.W > m.bounds.X {
			r.X = maxf(0, m.bounds.X-r.W)
		}
		if m.bounds.Y > 0 && r.Y+r.H > m.bounds.Y {
			r.Y = maxf(0, m.bounds.Y-r.H)
		}
		panels = append(panels, menuPanel{items: items, rect: r, prefix: prefix})

		if depth >= len(m.openPath) {
			break
		}
		idx := indexOfKey(items, m.openPath[depth])
		if idx < 0 || !items[idx].IsSubmenu() {
			break
		}
		origin = Vec2{X: r.X + r.W, Y: r.Y + float32(idx)*st.MenuItemHeight}
		prefix = append(slices.Clone(prefix), items[idx].Key)
		items = items[idx].Children
	}
	return panels
}

// hit finds the item under p, searching the deepest panel first since
// submenus overlap their parents.
func (m *Menu) hit(p Vec2) (menuPanel, int, bool) {
	panels := m.layout()
	for i := len(panels) - 1; i >= 0; i-- {
		panel := panels[i]
		if !panel.rect.Contains(p) {
			continue
		}
		idx := int((p.Y - panel.rect.Y) / m.style.MenuItemHeight)
		if idx >= 0 && idx < len(panel.items) {
			return panel, idx, true
		}
	}
	return menuPanel{}, 0, false
}

func indexOfKey(items []MenuItem, key string) int {
	return slices.IndexFunc(items, func(it MenuItem) bool { return it.Key == key })
}

// resolvablePrefix returns the longest prefix of path that names a chain
// of submenus in items.
func resolvablePrefix(items []MenuItem, path []string) []string {
	var out []string
	for _, key := range path {
		idx := indexOfKey(items, key)
		if idx < 0 || !items[idx].IsSubmenu() {
			break
		}
		out = append(out, key)
		items = items[idx].Children
	}
	return out
}

func isPrefix(prefix, path []string) bool {
	return len(prefix) <= len(path) && slices.Equal(prefix, path[:len(prefix)])
}
