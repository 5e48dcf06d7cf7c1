package ui

import (
	"image/color"
	"strconv"
	"strings"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector Selector
	Props    map[string]string // e.g. "background" -> "#333"
	order    int
}

// Stylesheet is a list of rules sorted by specificity, then source order.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
// WidthPct/HeightPct: 0–100 of the screen; -1 means use Width/Height.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	WidthPct   int32
	HeightPct  int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Opacity    float32
	Transition float32 // seconds an opacity change takes
	Hidden     bool    // display: none
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border:    color.RGBA{A: 255},
		WidthPct:  -1,
		HeightPct: -1,
		LeftPct:   -1,
		TopPct:    -1,
		Padding:   4,
		FontSize:  20,
		Opacity:   1,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or "transparent". Returns black and false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	black := color.RGBA{A: 255}
	if s == "transparent" {
		return color.RGBA{}, true
	}
	if len(s) < 4 || s[0] != '#' {
		return black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return black, false
		}
	}
	nib := func(i int) uint8 { v, _ := hexByte(hex[i]); return v }
	switch len(hex) {
	case 3:
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 6:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: 255}, true
	}
	return black, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ParseSeconds parses a CSS time ("0.6s", "600ms"). In a shorthand such as
// "opacity 0.6s ease" the first time value is used.
func ParseSeconds(s string) (float32, bool) {
	for _, f := range strings.Fields(s) {
		var unit float64
		switch {
		case strings.HasSuffix(f, "ms"):
			f, unit = strings.TrimSuffix(f, "ms"), 0.001
		case strings.HasSuffix(f, "s"):
			f, unit = strings.TrimSuffix(f, "s"), 1
		default:
			continue
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil || v < 0 {
			continue
		}
		return float32(v * unit), true
	}
	return 0, false
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			if c, ok := ParseHexColor(lastField(v)); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if pct, ok := ParsePct(v); ok {
				out.WidthPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if pct, ok := ParsePct(v); ok {
				out.HeightPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "opacity":
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				out.Opacity = float32(min(max(f, 0), 1))
			}
		case "transition", "transition-duration":
			if sec, ok := ParseSeconds(v); ok {
				out.Transition = sec
			}
		case "display":
			out.Hidden = v == "none"
		}
	}
	return out
}

func lastField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return s
	}
	return f[len(f)-1]
}
