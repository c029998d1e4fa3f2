package grid

import "testing"

func testMenuItems() []MenuItem {
	return []MenuItem{
		{Key: "copy", Label: "Copy value"},
		{Key: "sep", Separator: true},
		{Key: "column", Label: "Column", Children: []MenuItem{
			{Key: "reset", Label: "Reset width"},
			{Key: "hide", Label: "Hide", Disabled: true},
		}},
	}
}

// Root panel rows are 24px tall starting at y=0; the submenu opens at
// x=180 aligned with the "column" item (y=48).
func openTestMenu() *Menu {
	m := NewMenu(testMenuItems(), DefaultStyle())
	m.Open(Vec2{}, Vec2{X: 1000, Y: 1000})
	return m
}

func TestMenuHoverOpensSubmenu(t *testing.T) {
	m := openTestMenu()

	if !m.PointerMove(Vec2{X: 10, Y: 60}) {
		t.Fatal("hovering the submenu item should change state")
	}
	if got := m.OpenPath(); len(got) != 1 || got[0] != "column" {
		t.Fatalf("OpenPath = %v, want [column]", got)
	}

	// Hovering a leaf inside the submenu keeps it open.
	m.PointerMove(Vec2{X: 190, Y: 50})
	if got := m.OpenPath(); len(got) != 1 || got[0] != "column" {
		t.Errorf("OpenPath = %v, want [column]", got)
	}

	// Hovering a root leaf truncates the path.
	m.PointerMove(Vec2{X: 10, Y: 10})
	if got := m.OpenPath(); len(got) != 0 {
		t.Errorf("OpenPath = %v, want empty", got)
	}
}

func TestMenuSelectLeaf(t *testing.T) {
	m := openTestMenu()
	m.PointerMove(Vec2{X: 10, Y: 60})

	key, inside := m.PointerDown(Vec2{X: 190, Y: 50})
	if key != "reset" || !inside {
		t.Errorf("got key=%q inside=%v, want reset true", key, inside)
	}
	if m.IsOpen() {
		t.Error("selecting a leaf should close the menu")
	}
}

func TestMenuDisabledAndSeparator(t *testing.T) {
	m := openTestMenu()
	m.PointerMove(Vec2{X: 10, Y: 60})

	if key, inside := m.PointerDown(Vec2{X: 190, Y: 74}); key != "" || !inside {
		t.Errorf("disabled item: got key=%q inside=%v", key, inside)
	}
	if key, inside := m.PointerDown(Vec2{X: 10, Y: 30}); key != "" || !inside {
		t.Errorf("separator: got key=%q inside=%v", key, inside)
	}
	if !m.IsOpen() {
		t.Error("menu closed by a non-selectable item")
	}
}

func TestMenuClickOutsideCloses(t *testing.T) {
	m := openTestMenu()
	if key, inside := m.PointerDown(Vec2{X: 500, Y: 500}); key != "" || inside {
		t.Errorf("got key=%q inside=%v", key, inside)
	}
	if m.IsOpen() {
		t.Error("menu still open")
	}
}

func TestMenuSetItemsPrunesPath(t *testing.T) {
	m := openTestMenu()
	m.PointerMove(Vec2{X: 10, Y: 60})

	m.SetItems([]MenuItem{{Key: "copy", Label: "Copy value"}})
	if got := m.OpenPath(); len(got) != 0 {
		t.Errorf("OpenPath = %v after the submenu disappeared", got)
	}

	m.SetItems(testMenuItems())
	m.PointerMove(Vec2{X: 10, Y: 60})
	m.SetItems([]MenuItem{{Key: "column", Children: []MenuItem{{Key: "other"}}}})
	if got := m.OpenPath(); len(got) != 1 || got[0] != "column" {
		t.Errorf("OpenPath = %v, want [column]", got)
	}
}

func TestMenuStaysInsideBounds(t *testing.T) {
	m := NewMenu(testMenuItems(), DefaultStyle())
	m.Open(Vec2{X: 390, Y: 290}, Vec2{X: 400, Y: 300})

	panels := m.layout()
	r := panels[0].rect
	if r.X+r.W > 400 || r.Y+r.H > 300 {
		t.Errorf("panel %+v overflows bounds", r)
	}
}

func TestMenuClosedIgnoresInput(t *testing.T) {
	m := NewMenu(testMenuItems(), DefaultStyle())
	if m.PointerMove(Vec2{X: 10, Y: 10}) {
		t.Error("closed menu reacted to hover")
	}
	if _, inside := m.PointerDown(Vec2{X: 10, Y: 10}); inside {
		t.Error("closed menu reacted to a press")
	}
}
