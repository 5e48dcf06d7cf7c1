// Package fonts locates TTF/OTF files for the overlay text by family name.
package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// DefaultDirs are searched when no directory is configured, relative to the working directory.
func DefaultDirs(assetDir string) []string {
	return []string{filepath.Join(assetDir, "fonts"), "fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf"),
// sorted, with forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the first font under dirs whose path contains search, ignoring
// case, spaces, dashes and underscores. search may also be a path to an
// existing file. When several files of one directory match, a "Regular" style wins.
func Find(dirs []string, search string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", os.ErrNotExist
	}
	if isFont(search) {
		if _, err := os.Stat(search); err == nil {
			return search, nil
		}
	}
	norm := normalize(strings.TrimSuffix(search, filepath.Ext(search)))
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		var match string
		for _, rel := range list {
			if !strings.Contains(normalize(rel), norm) {
				continue
			}
			if match == "" {
				match = rel
			}
			if strings.Contains(strings.ToLower(rel), "regular") {
				match = rel
				break
			}
		}
		if match != "" {
			return filepath.Join(dir, filepath.FromSlash(match)), nil
		}
	}
	return "", os.ErrNotExist
}
