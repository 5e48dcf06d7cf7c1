package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"maps"
	"os"
)

//go:embed style.css
var defaultCSS string

// DefaultStylesheet parses the embedded stylesheet. On a syntax error the
// rules that did parse are still returned.
func DefaultStylesheet() (*Stylesheet, error) {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		return sheet, fmt.Errorf("ui: embedded style.css: %w", err)
	}
	return sheet, nil
}

// Painter draws primitives on the screen. The graphics package provides the
// raylib implementation; tests use a recorder.
type Painter interface {
	ScreenSize() (w, h int32)
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	Text(text string, x, y, size int32, c color.RGBA)
}

// Engine holds the current stylesheet and nodes.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when the sheet, the node list
// or a node's classes change.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// style returns the resolved style of n, or the default if n is not attached.
func (e *Engine) style(n *Node) ComputedStyle {
	e.resolve()
	for i, m := range e.nodes {
		if m == n {
			return e.cachedStyles[i]
		}
	}
	return DefaultComputedStyle()
}

// resolveProps returns merged properties for a node; rules are pre-sorted so
// the last matching one wins, and inline properties win over all of them.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, rule := range e.sheet.Rules {
			if rule.Selector.Matches(n) {
				maps.Copy(merged, rule.Props)
			}
		}
	}
	maps.Copy(merged, n.inline)
	return merged
}

func (e *Engine) resolve() {
	if e.cacheValid {
		for _, n := range e.nodes {
			if n.dirty {
				e.cacheValid = false
				break
			}
		}
	}
	if e.cacheValid {
		return
	}
	if len(e.cachedStyles) != len(e.nodes) {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	}
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		n.dirty = false
		if n.opacity < 0 {
			n.opacity = e.cachedStyles[i].Opacity
		}
	}
	e.cacheValid = true
}

// Update animates each node's opacity toward its style's opacity at the rate
// given by its transition duration. A zero duration snaps.
func (e *Engine) Update(dt float32) {
	e.resolve()
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		target := style.Opacity
		if style.Transition <= 0 {
			n.opacity = target
			continue
		}
		if dt <= 0 {
			continue
		}
		step := dt / style.Transition
		switch {
		case n.opacity < target:
			n.opacity = min(n.opacity+step, target)
		case n.opacity > target:
			n.opacity = max(n.opacity-step, target)
		}
	}
}

// layoutBounds sets n.Bounds from style for the given screen size.
func layoutBounds(n *Node, style ComputedStyle, screenW, screenH int32) {
	w, h := style.Width, style.Height
	if style.WidthPct >= 0 {
		w = screenW * style.WidthPct / 100
	}
	if style.HeightPct >= 0 {
		h = screenH * style.HeightPct / 100
	}
	x, y := style.Left, style.Top
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	n.Bounds = Rect{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}

func fade(c color.RGBA, opacity float32) color.RGBA {
	c.A = uint8(float32(c.A) * opacity)
	return c
}

// Draw lays out and draws all visible nodes: background, border, then text.
// Node opacity scales every color's alpha.
func (e *Engine) Draw(p Painter) {
	e.resolve()
	screenW, screenH := p.ScreenSize()
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		layoutBounds(n, style, screenW, screenH)
		op := n.Opacity()
		if style.Hidden || op <= 0 {
			continue
		}
		if style.Background.A > 0 {
			p.FillRect(n.Bounds, fade(style.Background, op))
		}
		if style.HasBorder && n.Bounds.Width > 0 && n.Bounds.Height > 0 {
			p.StrokeRect(n.Bounds, fade(style.Border, op))
		}
		if n.Text != "" {
			pad := style.Padding
			p.Text(n.Text, int32(n.Bounds.X)+pad, int32(n.Bounds.Y)+pad, style.FontSize, fade(style.Color, op))
		}
	}
}
