package demodata

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestSourceDeterministic(t *testing.T) {
	a, b := NewSource(100), NewSource(100)
	for _, i := range []int{0, 1, 42, 99} {
		for _, k := range Keys {
			if a.Row(i).Field(k) != b.Row(i).Field(k) {
				t.Errorf("row %d field %s differs between sources", i, k)
			}
		}
	}
	if got := a.Row(0).Field("missing"); got != nil {
		t.Errorf("unknown key = %v, want nil", got)
	}
}

func TestSourceLen(t *testing.T) {
	if got := NewSource(-3).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if got := NewSource(1_000_000).Len(); got != 1_000_000 {
		t.Errorf("Len() = %d", got)
	}
}

func TestIDs(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := ID(i)
		parsed, err := ulid.Parse(id)
		if err != nil {
			t.Fatalf("ID(%d) = %q: %v", i, id, err)
		}
		if want := Epoch.Add(time.Duration(i) * time.Minute); !ulid.Time(parsed.Time()).Equal(want) {
			t.Fatalf("ID(%d) time = %v, want %v", i, ulid.Time(parsed.Time()), want)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		if id <= prev {
			t.Fatalf("ID(%d) = %q not after %q", i, id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestFieldFormats(t *testing.T) {
	if got := Field(0, "modified"); got != "2024-01-01 00:00:00" {
		t.Errorf("modified = %v", got)
	}
	if got := Field(61, "modified"); got != "2024-01-01 01:01:00" {
		t.Errorf("modified = %v", got)
	}
	name := Field(7, "name").(string)
	if !strings.HasSuffix(name, "-0000007") {
		t.Errorf("name = %q", name)
	}
	size := Field(3, "size").(string)
	if !strings.HasSuffix(size, "B") {
		t.Errorf("size = %q, want a byte size", size)
	}
	for i := 0; i < 50; i++ {
		n := len(strings.Fields(Field(i, "note").(string)))
		if n < 1 || n > 12 {
			t.Fatalf("note %d has %d words", i, n)
		}
	}
}

func TestMaterialize(t *testing.T) {
	src := NewSource(1000)
	rows, err := Materialize(context.Background(), src, Keys, 64)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if rows.Len() != 1000 {
		t.Fatalf("Len() = %d", rows.Len())
	}
	for _, i := range []int{0, 63, 64, 999} {
		for _, k := range Keys {
			if got, want := rows.Row(i).Field(k), src.Row(i).Field(k); got != want {
				t.Errorf("row %d %s = %v, want %v", i, k, got, want)
			}
		}
	}
}

func TestMaterializeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Materialize(ctx, NewSource(1000), Keys, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
