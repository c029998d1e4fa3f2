// Package demodata generates a deterministic synthetic dataset for the
// gridview demo. Rows are computed on demand, so a million-row source
// costs no memory until it is materialised.
package demodata

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/go-theft-auto/grid"
)

// Keys lists every field a generated row carries.
var Keys = []string{"id", "name", "kind", "size", "count", "modified", "note"}

var (
	kinds = []string{"file", "directory", "symlink", "archive", "image", "video", "document"}
	words = []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel",
		"india", "juliet", "kilo", "lima", "mike", "november", "oscar", "papa",
		"quebec", "romeo", "sierra", "tango", "uniform", "victor", "whiskey",
		"xray", "yankee", "zulu", "データ", "表格",
	}
)

// Epoch is the timestamp of row 0. Later rows are one minute apart.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Source is a lazy grid.DataSource of n synthetic rows.
type Source struct {
	n int
}

// NewSource returns a source of n rows. Negative n is treated as 0.
func NewSource(n int) *Source {
	return &Source{n: max(n, 0)}
}

// Len implements grid.DataSource.
func (s *Source) Len() int { return s.n }

// Row implements grid.DataSource.
func (s *Source) Row(i int) grid.Row { return lazyRow(i) }

// lazyRow computes its fields from the row index.
type lazyRow int

// Field implements grid.Row.
func (r lazyRow) Field(key string) any {
	return Field(int(r), key)
}

// Field returns the value of key for row i, or nil for unknown keys.
func Field(i int, key string) any {
	h := mix(uint64(i))
	switch key {
	case "id":
		return ID(i)
	case "name":
		return fmt.Sprintf("%s-%s-%07d", words[h%uint64(len(words))], words[(h>>8)%uint64(len(words))], i)
	case "kind":
		return kinds[(h>>16)%uint64(len(kinds))]
	case "size":
		return humanize.Bytes((h >> 20) % (64 << 30))
	case "count":
		return humanize.Comma(int64((h >> 12) % 10_000_000))
	case "modified":
		return Epoch.Add(time.Duration(i) * time.Minute).Format(time.DateTime)
	case "note":
		return note(h)
	}
	return nil
}

// ID returns the ULID of row i. Its timestamp is the row's modified time
// and its entropy is derived from the index.
func ID(i int) string {
	var entropy [10]byte
	binary.BigEndian.PutUint64(entropy[:8], mix(uint64(i)^0x9e3779b97f4a7c15))
	binary.BigEndian.PutUint16(entropy[8:], uint16(i))
	t := Epoch.Add(time.Duration(i) * time.Minute)
	return ulid.MustNew(ulid.Timestamp(t), bytes.NewReader(entropy[:])).String()
}

// note builds a sentence of 1 to 12 words, so some notes overflow any
// reasonable column.
func note(h uint64) string {
	n := int(h%12) + 1
	parts := make([]string, n)
	for j := range parts {
		h = mix(h + uint64(j))
		parts[j] = words[h%uint64(len(words))]
	}
	return strings.Join(parts, " ")
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// DefaultChunk is the number of rows one materialise worker fills at a
// time.
const DefaultChunk = 16_384

// Materialize computes every row of src into memory, chunk rows per
// goroutine. It stops at the first cancellation.
func Materialize(ctx context.Context, src grid.DataSource, keys []string, chunk int) (grid.Rows, error) {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	n := src.Len()
	rows := make(grid.Rows, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				r := src.Row(i)
				m := make(grid.MapRow, len(keys))
				for _, k := range keys {
					m[k] = r.Field(k)
				}
				rows[i] = m
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("materialize %s rows: %w", humanize.Comma(int64(n)), err)
	}
	return rows, nil
}
