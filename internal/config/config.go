// Package config holds viewer preferences: window, overlays, input and asset
// locations. Preferences are read from JSON, then PORTFOLIO_* environment
// variables, then command-line flags, each overriding the previous.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPath is the preferences file, relative to the working directory.
const DefaultPath = "config/portfolio.json"

// Prefs are the viewer preferences. Scene content lives in the layout, not here.
type Prefs struct {
	Title        string  `json:"title"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Fullscreen   bool    `json:"fullscreen"`
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	ShowSection  bool    `json:"show_section"`
	ScrollStep   float32 `json:"scroll_step"` // pixels per wheel notch
	AssetDir     string  `json:"asset_dir"`
	CacheDir     string  `json:"cache_dir,omitempty"`
	LayoutPath   string  `json:"layout,omitempty"` // empty = embedded default
	StylePath    string  `json:"style,omitempty"`  // empty = embedded default
	Font         string  `json:"font,omitempty"`   // family name or file; empty = raylib default
	OutOfRange   string  `json:"out_of_range"`     // clamp | ignore | strict
	LogPath      string  `json:"log_path,omitempty"`
}

// Default returns the built-in preferences.
func Default() Prefs {
	return Prefs{
		Title:      "Portfolio",
		Width:      1280,
		Height:     800,
		ScrollStep: 100,
		AssetDir:   "assets",
		OutOfRange: "clamp",
	}
}

// Load reads preferences from path. A missing or invalid file yields Default()
// and no error; fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from PORTFOLIO_* variables read through lookup
// (os.LookupEnv in production). A malformed value is reported and skipped.
func (p *Prefs) ApplyEnv(lookup func(string) (string, bool)) error {
	var firstErr error
	note := func(key string, err error) {
		if firstErr == nil {
			firstErr = fmt.Errorf("config: %s: %w", key, err)
		}
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				note(key, err)
				return
			}
			*dst = b
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				note(key, err)
				return
			}
			*dst = n
		}
	}
	str("PORTFOLIO_TITLE", &p.Title)
	integer("PORTFOLIO_WIDTH", &p.Width)
	integer("PORTFOLIO_HEIGHT", &p.Height)
	boolean("PORTFOLIO_FULLSCREEN", &p.Fullscreen)
	boolean("PORTFOLIO_SHOW_FPS", &p.ShowFPS)
	boolean("PORTFOLIO_SHOW_MEMALLOC", &p.ShowMemAlloc)
	boolean("PORTFOLIO_SHOW_SECTION", &p.ShowSection)
	if v, ok := lookup("PORTFOLIO_SCROLL_STEP"); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			note("PORTFOLIO_SCROLL_STEP", err)
		} else {
			p.ScrollStep = float32(f)
		}
	}
	str("PORTFOLIO_ASSET_DIR", &p.AssetDir)
	str("PORTFOLIO_CACHE_DIR", &p.CacheDir)
	str("PORTFOLIO_LAYOUT", &p.LayoutPath)
	str("PORTFOLIO_STYLE", &p.StylePath)
	str("PORTFOLIO_FONT", &p.Font)
	str("PORTFOLIO_OUT_OF_RANGE", &p.OutOfRange)
	str("PORTFOLIO_LOG", &p.LogPath)
	return firstErr
}

// Validate checks values the viewer cannot run with.
func (p Prefs) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", p.Width, p.Height)
	}
	if p.ScrollStep <= 0 {
		return fmt.Errorf("config: scroll step %v must be positive", p.ScrollStep)
	}
	return nil
}
