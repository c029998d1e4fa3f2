package grid

import (
	"strings"
	"testing"
)

var cells = CellMeasurer{Advance: 10}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float32
		want     string
	}{
		{"fits", "hello", 100, "hello"},
		{"exact fit", "hello", 50, "hello"},
		{"truncated", "hello world!", 80, "hello..."},
		{"narrower than ellipsis", "hello world", 20, "..."},
		{"empty", "", 10, ""},
		{"cjk", "漢字漢字漢字", 70, "漢字..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(cells, tt.text, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateTextIdempotentAndFits(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog 漢字テスト"
	for w := float32(30); w <= 600; w += 7 {
		got := TruncateText(cells, text, w)
		if cells.MeasureText(got) > w {
			t.Fatalf("width %v: %q measures %v", w, got, cells.MeasureText(got))
		}
		if again := TruncateText(cells, got, w); again != got {
			t.Fatalf("width %v: truncating %q again gave %q", w, got, again)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float32
		maxLines int
		want     []string
	}{
		{"single line", "alpha", 100, 3, []string{"alpha"}},
		{"two lines", "alpha beta gamma", 100, 3, []string{"alpha beta", "gamma"}},
		{"leading spaces dropped", "   alpha", 100, 3, []string{"alpha"}},
		{"cjk breaks per ideograph", "漢字漢字漢字", 40, 5, []string{"漢字", "漢字", "漢字"}},
		{"long word keeps its own line", "abcdefghijklmno xy", 100, 3, []string{"abcdefghijklmno", "xy"}},
		{"empty", "", 100, 3, nil},
		{"no lines allowed", "alpha", 100, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(cells, tt.text, tt.maxWidth, tt.maxLines)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("WrapText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrapTextBounded(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor ", 20)
	for maxLines := 1; maxLines <= 4; maxLines++ {
		lines := WrapText(cells, text, 100, maxLines)
		if len(lines) > maxLines {
			t.Fatalf("maxLines %d: got %d lines", maxLines, len(lines))
		}
		last := lines[len(lines)-1]
		if !strings.HasSuffix(last, Ellipsis) {
			t.Errorf("maxLines %d: last line %q lacks ellipsis", maxLines, last)
		}
		if cells.MeasureText(last) > 100 {
			t.Errorf("maxLines %d: last line %q too wide", maxLines, last)
		}
	}
}

func TestWrapTextShortensLastLine(t *testing.T) {
	lines := WrapText(cells, "alpha beta gamma", 100, 1)
	if len(lines) != 1 || lines[0] != "alpha b..." {
		t.Errorf("got %q, want [\"alpha b...\"]", lines)
	}
}

func TestMaxWrapLines(t *testing.T) {
	tests := []struct {
		rowHeight, paddingY, lineHeight float32
		want                            int
	}{
		{30, 5, 20, 1},
		{100, 5, 20, 4},
		{5, 5, 20, 0},
		{30, 5, 0, 0},
	}
	for _, tt := range tests {
		if got := MaxWrapLines(tt.rowHeight, tt.paddingY, tt.lineHeight); got != tt.want {
			t.Errorf("MaxWrapLines(%v, %v, %v) = %d, want %d", tt.rowHeight, tt.paddingY, tt.lineHeight, got, tt.want)
		}
	}
}

func TestWrapBlockTop(t *testing.T) {
	if got := WrapBlockTop(100, 30, 20, 1); got != 105 {
		t.Errorf("one line: got %v, want 105", got)
	}
	if got := WrapBlockTop(0, 100, 20, 3); got != 20 {
		t.Errorf("three lines: got %v, want 20", got)
	}
}

func TestSplitSegments(t *testing.T) {
	got := splitSegments("ab  c漢字d")
	want := []string{"ab", "  ", "c", "漢", "字", "d"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitSegments = %q, want %q", got, want)
	}
}
