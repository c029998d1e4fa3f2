package grid

import "testing"

func TestListClipper(t *testing.T) {
	tests := []struct {
		name                 string
		total                int
		itemH, visH, scrollY float32
		wantStart, wantEnd   int
	}{
		{"top", 100, 30, 300, 0, 0, 10},
		{"partial rows", 100, 30, 300, 45, 1, 12},
		{"clamped to count", 10, 30, 500, 0, 0, 10},
		{"scrolled to end", 100, 30, 500, 2500, 83, 100},
		{"empty", 0, 30, 300, 0, 0, 0},
		{"no height", 100, 30, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewListClipper(tt.total, tt.itemH, tt.visH, tt.scrollY)
			if c.StartIdx != tt.wantStart || c.EndIdx != tt.wantEnd {
				t.Errorf("got [%d, %d), want [%d, %d)", c.StartIdx, c.EndIdx, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestListClipperScrollToItem(t *testing.T) {
	c := NewListClipper(100, 30, 300, 0)

	if got := c.ScrollToItem(5, 0, 300); got != 0 {
		t.Errorf("visible row: got %v, want 0", got)
	}
	if got := c.ScrollToItem(50, 0, 300); got != 1230 {
		t.Errorf("row below: got %v, want 1230", got)
	}
	if got := c.ScrollToItem(2, 600, 300); got != 60 {
		t.Errorf("row above: got %v, want 60", got)
	}
	if got := c.ScrollToItem(500, 90, 300); got != 90 {
		t.Errorf("out of range: got %v, want 90", got)
	}
}

func TestListClipperItemY(t *testing.T) {
	c := NewListClipper(100, 30, 300, 45)
	if got := c.ItemY(2, 40, 45); got != 55 {
		t.Errorf("ItemY = %v, want 55", got)
	}
	if c.StartIdx != 1 || c.EndIdx != 12 {
		t.Errorf("window = [%d, %d), want [1, 12)", c.StartIdx, c.EndIdx)
	}
}
