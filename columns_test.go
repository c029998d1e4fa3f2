package grid

import (
	"strings"
	"testing"
)

func TestResolveWidths(t *testing.T) {
	tests := []struct {
		name      string
		columns   []ColumnDescriptor
		measured  []float32
		available float32
		reserve   float32
		want      []float32
	}{
		{
			name:      "slack to flexible only",
			columns:   []ColumnDescriptor{{Key: "a", Width: 100}, {Key: "b"}, {Key: "c"}},
			available: 1000,
			reserve:   10,
			want:      []float32{100, 445, 445},
		},
		{
			name:      "remainder unassigned",
			columns:   []ColumnDescriptor{{Key: "a"}, {Key: "b"}},
			available: 601,
			want:      []float32{300, 300},
		},
		{
			name:      "no slack when narrow",
			columns:   []ColumnDescriptor{{Key: "a"}, {Key: "b", Width: 80}},
			available: 100,
			want:      []float32{150, 80},
		},
		{
			name:      "measured minimum wins",
			columns:   []ColumnDescriptor{{Key: "a"}, {Key: "b"}},
			measured:  []float32{400, 0},
			available: 0,
			want:      []float32{400, 150},
		},
		{
			name:      "all fixed ignores slack",
			columns:   []ColumnDescriptor{{Key: "a", Width: 50}},
			available: 1000,
			want:      []float32{50},
		},
		{
			name: "no columns",
			want: []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWidths(tt.columns, tt.measured, tt.available, tt.reserve)
			if got.Len() != len(tt.want) {
				t.Fatalf("got %d widths, want %d", got.Len(), len(tt.want))
			}
			sum := float32(0)
			for i, w := range got.Widths {
				if w != tt.want[i] {
					t.Errorf("width[%d] = %v, want %v", i, w, tt.want[i])
				}
				sum += w
			}
			if sum != got.Total {
				t.Errorf("sum %v != total %v", sum, got.Total)
			}
		})
	}
}

func TestResolveWidthsInvariants(t *testing.T) {
	columns := []ColumnDescriptor{{Key: "a"}, {Key: "b", Width: 90}, {Key: "c"}, {Key: "d", Width: 300}}
	for available := float32(0); available < 3000; available += 37 {
		got := ResolveWidths(columns, []float32{0, 0, 220, 0}, available, 10)
		sum := float32(0)
		for i, w := range got.Widths {
			sum += w
			if columns[i].Flexible() && w < MinColumnWidth {
				t.Fatalf("available %v: flexible column %d width %v below floor", available, i, w)
			}
			if !columns[i].Flexible() && w != columns[i].Width {
				t.Fatalf("available %v: fixed column %d width %v", available, i, w)
			}
		}
		if sum != got.Total {
			t.Fatalf("available %v: sum %v != total %v", available, sum, got.Total)
		}
	}
}

func TestMeasureMinWidthsGrowsWithContent(t *testing.T) {
	columns := []ColumnDescriptor{{Key: "name", Title: "Name"}, {Key: "size", Width: 80}}
	rows := Rows{
		MapRow{"name": "short", "size": 1},
		MapRow{"name": strings.Repeat("x", 30), "size": 2},
	}

	mins := MeasureMinWidths(cells, columns, rows, 0, 1, nil)
	if mins[0] != MinColumnWidth {
		t.Errorf("first row only: got %v, want %v", mins[0], MinColumnWidth)
	}
	if mins[1] != 0 {
		t.Errorf("fixed column: got %v, want 0", mins[1])
	}

	mins = MeasureMinWidths(cells, columns, rows, 0, 2, mins)
	if mins[0] < 300+ContentMargin {
		t.Errorf("after wide row: got %v, want >= %v", mins[0], 300+ContentMargin)
	}
	widths := ResolveWidths(columns, mins, 0, 0)
	if widths.Width(0) < 340 {
		t.Errorf("resolved width %v, want >= 340", widths.Width(0))
	}

	// Scrolling back to narrow rows never shrinks the minimum.
	again := MeasureMinWidths(cells, columns, rows, 0, 1, mins)
	if again[0] != mins[0] {
		t.Errorf("minimum shrank from %v to %v", mins[0], again[0])
	}
}

func TestMeasureMinWidthsHeader(t *testing.T) {
	columns := []ColumnDescriptor{{Key: "k", Title: strings.Repeat("T", 20)}}
	mins := MeasureMinWidths(cells, columns, nil, 0, 0, nil)
	if mins[0] != 240 {
		t.Errorf("got %v, want 240", mins[0])
	}
}

func TestMeasureMinWidthsWithoutMeasurer(t *testing.T) {
	columns := []ColumnDescriptor{{Key: "a"}, {Key: "b"}}
	mins := MeasureMinWidths(nil, columns, Rows{MapRow{"a": "zzzz"}}, 0, 1, []float32{0, 260})
	if mins[0] != MinColumnWidth || mins[1] != 260 {
		t.Errorf("got %v, want [150 260]", mins)
	}
}

func TestColumnWidthsOffset(t *testing.T) {
	w := ColumnWidths{Widths: []float32{100, 200, 50}, Total: 350}
	if got := w.Offset(2); got != 300 {
		t.Errorf("Offset(2) = %v, want 300", got)
	}
	if got := w.Width(5); got != 0 {
		t.Errorf("Width(5) = %v, want 0", got)
	}
}
