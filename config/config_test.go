package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/grid/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
header_height = 36
row_height = 24.5
show_ellipsis = true
font = "inconsolata"
theme = "dark"

[window]
width = 800
height = 600
title = "files"

[data]
rows = 5000
materialize = true

[[columns]]
key = "name"
title = "Name"

[[columns]]
key = "size"
width = 80
`)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ec := cfg.EngineConfig()
	if ec.HeaderHeight != 36 || ec.RowHeight != 24.5 || !ec.ShowEllipsis {
		t.Errorf("engine config = %+v", ec)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "files" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Data.Rows != 5000 || !cfg.Data.Materialize {
		t.Errorf("data = %+v", cfg.Data)
	}

	cols := cfg.ColumnDescriptors()
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if !cols[0].Flexible() || cols[0].Title != "Name" {
		t.Errorf("column 0 = %+v", cols[0])
	}
	if cols[1].Width != 80 || cols[1].Title != "size" {
		t.Errorf("column 1 = %+v, want width 80 and title falling back to key", cols[1])
	}

	if _, err := cfg.Face(); err != nil {
		t.Errorf("Face: %v", err)
	}
	if _, err := cfg.Style(); err != nil {
		t.Errorf("Style: %v", err)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "row_height = 28\n")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := config.Default()
	if cfg.RowHeight != 28 {
		t.Errorf("row height = %v, want 28", cfg.RowHeight)
	}
	if cfg.HeaderHeight != def.HeaderHeight {
		t.Errorf("header height = %v, want default %v", cfg.HeaderHeight, def.HeaderHeight)
	}
	if len(cfg.Columns) != len(def.Columns) {
		t.Errorf("columns = %d, want default %d", len(cfg.Columns), len(def.Columns))
	}
	if cfg.Data.Rows != def.Data.Rows {
		t.Errorf("rows = %d, want default %d", cfg.Data.Rows, def.Data.Rows)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"zero row height", "row_height = 0\n", config.ErrInvalidHeight},
		{"negative header", "header_height = -1\n", config.ErrInvalidHeight},
		{"empty columns", "columns = []\n", config.ErrNoColumns},
		{"duplicate key", "[[columns]]\nkey = \"a\"\n[[columns]]\nkey = \"a\"\n", config.ErrDuplicateKey},
		{"empty key", "[[columns]]\ntitle = \"A\"\n", config.ErrEmptyKey},
		{"negative width", "[[columns]]\nkey = \"a\"\nwidth = -5\n", config.ErrInvalidWidth},
		{"unknown font", "font = \"comic\"\n", config.ErrUnknownFont},
		{"unknown theme", "theme = \"neon\"\n", config.ErrUnknownTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.LoadFrom(writeConfig(t, "row_height = \n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if filepath.Base(p) != "config.toml" || filepath.Base(filepath.Dir(p)) != "gridview" {
		t.Errorf("DefaultPath() = %q", p)
	}
}
