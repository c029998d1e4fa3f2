// Package config loads the gridview TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"

	"github.com/go-theft-auto/grid"
)

var (
	ErrNoColumns     = errors.New("no columns defined")
	ErrDuplicateKey  = errors.New("duplicate column key")
	ErrEmptyKey      = errors.New("column key is empty")
	ErrInvalidHeight = errors.New("header and row height must be positive")
	ErrInvalidWidth  = errors.New("column width must not be negative")
	ErrUnknownFont   = errors.New("unknown font")
	ErrUnknownTheme  = errors.New("unknown theme")
)

// File is the top-level configuration.
type File struct {
	HeaderHeight float32        `toml:"header_height"`
	RowHeight    float32        `toml:"row_height"`
	ShowEllipsis bool           `toml:"show_ellipsis"`
	Font         string         `toml:"font"`
	Theme        string         `toml:"theme"`
	Window       WindowConfig   `toml:"window"`
	Data         DataConfig     `toml:"data"`
	Columns      []ColumnConfig `toml:"columns"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// DataConfig selects the demo dataset.
type DataConfig struct {
	Rows        int  `toml:"rows"`
	Materialize bool `toml:"materialize"`
}

// ColumnConfig describes one column. Width 0 means flexible.
type ColumnConfig struct {
	Key   string  `toml:"key"`
	Title string  `toml:"title"`
	Width float32 `toml:"width"`
}

// Font names accepted by the font key.
const (
	FontBasic           = "basic"
	FontInconsolata     = "inconsolata"
	FontInconsolataBold = "inconsolata-bold"
)

// Default returns the configuration used when no file exists.
func Default() *File {
	cfg := grid.DefaultConfig()
	return &File{
		HeaderHeight: cfg.HeaderHeight,
		RowHeight:    cfg.RowHeight,
		ShowEllipsis: cfg.ShowEllipsis,
		Font:         FontBasic,
		Theme:        "light",
		Window:       WindowConfig{Width: 1280, Height: 720, Title: "gridview"},
		Data:         DataConfig{Rows: 1_000_000},
		Columns: []ColumnConfig{
			{Key: "id", Title: "ID"},
			{Key: "name", Title: "Name"},
			{Key: "kind", Title: "Kind", Width: 90},
			{Key: "size", Title: "Size", Width: 90},
			{Key: "count", Title: "Count", Width: 110},
			{Key: "modified", Title: "Modified", Width: 170},
			{Key: "note", Title: "Note"},
		},
	}
}

// DefaultPath returns the default config file path using XDG conventions.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "gridview", "config.toml")
}

// Load reads path, or DefaultPath when path is empty. A missing file at
// the default path yields Default; a missing explicit path is an error.
func Load(path string) (*File, error) {
	if path != "" {
		return LoadFrom(path)
	}
	path = DefaultPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the config file at path. Keys missing
// from the file keep their default values; a file without any columns
// table keeps the default columns.
func LoadFrom(path string) (*File, error) {
	cfg := Default()
	defaults := cfg.Columns
	cfg.Columns = nil

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if !md.IsDefined("columns") {
		cfg.Columns = defaults
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		grid.Logger().Warn("unknown config keys", "path", path, "keys", fmt.Sprint(keys))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks heights, columns, font and theme.
func (f *File) Validate() error {
	if f.HeaderHeight <= 0 || f.RowHeight <= 0 {
		return fmt.Errorf("%w: header_height=%v row_height=%v", ErrInvalidHeight, f.HeaderHeight, f.RowHeight)
	}
	if len(f.Columns) == 0 {
		return ErrNoColumns
	}
	seen := make(map[string]bool, len(f.Columns))
	for i, c := range f.Columns {
		switch {
		case c.Key == "":
			return fmt.Errorf("%w: column %d", ErrEmptyKey, i)
		case seen[c.Key]:
			return fmt.Errorf("%w: %q", ErrDuplicateKey, c.Key)
		case c.Width < 0:
			return fmt.Errorf("%w: %q has width %v", ErrInvalidWidth, c.Key, c.Width)
		}
		seen[c.Key] = true
	}
	if _, err := f.Face(); err != nil {
		return err
	}
	if _, err := f.Style(); err != nil {
		return err
	}
	return nil
}

// EngineConfig returns the engine configuration.
func (f *File) EngineConfig() grid.Config {
	return grid.Config{
		HeaderHeight: f.HeaderHeight,
		RowHeight:    f.RowHeight,
		ShowEllipsis: f.ShowEllipsis,
	}
}

// ColumnDescriptors returns the columns in layout order. An empty title
// falls back to the key.
func (f *File) ColumnDescriptors() []grid.ColumnDescriptor {
	cols := make([]grid.ColumnDescriptor, len(f.Columns))
	for i, c := range f.Columns {
		title := c.Title
		if title == "" {
			title = c.Key
		}
		cols[i] = grid.ColumnDescriptor{Key: c.Key, Title: title, Width: c.Width}
	}
	return cols
}

// Face returns the configured font face.
func (f *File) Face() (font.Face, error) {
	switch f.Font {
	case "", FontBasic:
		return basicfont.Face7x13, nil
	case FontInconsolata:
		return inconsolata.Regular8x16, nil
	case FontInconsolataBold:
		return inconsolata.Bold8x16, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, f.Font)
}

// Style returns the colour theme.
func (f *File) Style() (grid.Style, error) {
	switch f.Theme {
	case "", "light":
		return grid.DefaultStyle(), nil
	case "dark":
		return grid.DarkStyle(), nil
	}
	return grid.Style{}, fmt.Errorf("%w: %q", ErrUnknownTheme, f.Theme)
}
