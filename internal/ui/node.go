package ui

import "slices"

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Node is a single UI element: panel, label, bar. It has an optional id and
// class list for CSS matching, bounds resolved from style, and optional text.
type Node struct {
	Type    string // "panel", "label", etc.
	ID      string // e.g. "loading-screen" for #loading-screen
	Bounds  Rect
	Text    string
	classes []string
	inline  map[string]string

	opacity float32 // animated; negative until first resolved
	dirty   bool
}

// NewNode creates a node with type, optional space-separated classes, id and text.
func NewNode(typ, class, id, text string) *Node {
	n := &Node{Type: typ, ID: id, Text: text, opacity: -1, dirty: true}
	for _, c := range splitFields(class) {
		n.AddClass(c)
	}
	return n
}

// Classes returns the node's class list.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// HasClass reports whether class is in the node's class list.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// AddClass adds class to the list; adding twice is a no-op.
func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
	n.dirty = true
}

// RemoveClass drops class from the list.
func (n *Node) RemoveClass(class string) {
	i := slices.Index(n.classes, class)
	if i < 0 {
		return
	}
	n.classes = slices.Delete(n.classes, i, i+1)
	n.dirty = true
}

// SetStyle sets an inline property that overrides every stylesheet rule.
func (n *Node) SetStyle(key, value string) {
	if n.inline == nil {
		n.inline = make(map[string]string)
	}
	if n.inline[key] == value {
		return
	}
	n.inline[key] = value
	n.dirty = true
}

// Opacity is the node's current animated opacity.
func (n *Node) Opacity() float32 {
	if n.opacity < 0 {
		return 1
	}
	return n.opacity
}

func splitFields(s string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' || s[i] == '\t' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return out
}
