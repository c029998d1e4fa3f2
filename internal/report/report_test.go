package report

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/internal/demodata"
)

func testOptions() Options {
	return Options{
		Columns: []grid.ColumnDescriptor{
			{Key: "id", Title: "ID"},
			{Key: "kind", Title: "Kind", Width: 90},
			{Key: "size", Title: "Size", Width: 90},
		},
		Data:       demodata.NewSource(10_000),
		Config:     grid.DefaultConfig(),
		Style:      grid.DefaultStyle(),
		Face:       basicfont.Face7x13,
		FontName:   "basic",
		Width:      640,
		Height:     400,
		PixelRatio: 1,
		Select:     grid.NoRow,
	}
}

func TestSnapshot(t *testing.T) {
	o := testOptions()
	o.ScrollTop = 300
	o.Select = 12

	s, err := Snapshot(o)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	// Row 12 starts at 40 + 12*30 - 300 = 100.
	if got := s.At(400, 105); got != o.Style.SelectedBgColor {
		t.Errorf("selected band pixel = %08x, want %08x", got, o.Style.SelectedBgColor)
	}
	if got := s.At(400, 5); got != o.Style.HeaderBgColor {
		t.Errorf("header pixel = %08x, want %08x", got, o.Style.HeaderBgColor)
	}
}

func TestSnapshotPixelRatio(t *testing.T) {
	o := testOptions()
	o.PixelRatio = 2

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, o); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 800 {
		t.Errorf("bounds = %v, want 1280x800", b)
	}
}

func TestSnapshotEmptySize(t *testing.T) {
	o := testOptions()
	o.Width = 0
	if _, err := Snapshot(o); err == nil {
		t.Fatal("expected an error for an empty size")
	}
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(testOptions())

	if l.Widths.Len() != 3 {
		t.Fatalf("widths = %d, want 3", l.Widths.Len())
	}
	// 10,000 rows overflow vertically, so the flexible column fills the
	// container minus both fixed columns and the scrollbar.
	want := 640 - 90 - 90 - l.Viewport.ScrollbarSize
	if got := l.Widths.Width(0); got > want || got <= want-1 {
		t.Errorf("flexible width = %v, want within 1px below %v", got, want)
	}
	if l.FirstRow != 0 || l.LastRow != 12 {
		t.Errorf("visible rows = [%d, %d), want [0, 12)", l.FirstRow, l.LastRow)
	}
	if !l.VerticalThumb.Visible || l.HorizontalThumb.Visible {
		t.Errorf("thumbs = %+v / %+v", l.VerticalThumb, l.HorizontalThumb)
	}

	out := l.Render()
	for _, s := range []string{"Column layout", "kind", "fixed 90px", "10,000"} {
		if !strings.Contains(out, s) {
			t.Errorf("report missing %q:\n%s", s, out)
		}
	}
}
