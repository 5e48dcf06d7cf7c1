package section

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title is the section's display name: "books" -> "Books", "double-diamond" -> "Double Diamond".
func (s *Section) Title() string {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(s.Name)
	return titleCaser.String(name)
}
