package ui

import (
	"fmt"
	"strings"
)

// Selector is a compound simple selector: optional type, optional #id and
// any number of .classes, e.g. "label#loading-text.dim". Combinators are not supported.
type Selector struct {
	Type    string
	ID      string
	Classes []string
}

// ParseSelector parses a compound selector.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("ui: empty selector")
	}
	if strings.ContainsAny(s, " \t\n>+~[:*") {
		return Selector{}, fmt.Errorf("ui: unsupported selector %q", s)
	}
	var sel Selector
	i := 0
	for i < len(s) {
		j := i + 1
		for j < len(s) && s[j] != '.' && s[j] != '#' {
			j++
		}
		part := s[i:j]
		switch part[0] {
		case '.':
			if len(part) < 2 {
				return Selector{}, fmt.Errorf("ui: bad selector %q", s)
			}
			sel.Classes = append(sel.Classes, part[1:])
		case '#':
			if len(part) < 2 || sel.ID != "" {
				return Selector{}, fmt.Errorf("ui: bad selector %q", s)
			}
			sel.ID = part[1:]
		default:
			if i != 0 {
				return Selector{}, fmt.Errorf("ui: bad selector %q", s)
			}
			sel.Type = part
		}
		i = j
	}
	return sel, nil
}

// Matches reports whether n satisfies every part of the selector.
func (s Selector) Matches(n *Node) bool {
	if s.Type != "" && s.Type != n.Type {
		return false
	}
	if s.ID != "" && s.ID != n.ID {
		return false
	}
	for _, c := range s.Classes {
		if !n.HasClass(c) {
			return false
		}
	}
	return true
}

// Specificity orders rules: ids outrank classes outrank types.
func (s Selector) Specificity() int {
	n := len(s.Classes) * 10
	if s.ID != "" {
		n += 100
	}
	if s.Type != "" {
		n++
	}
	return n
}

func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Type)
	if s.ID != "" {
		b.WriteString("#" + s.ID)
	}
	for _, c := range s.Classes {
		b.WriteString("." + c)
	}
	return b.String()
}
