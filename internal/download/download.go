package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const defaultUserAgent = "scroll-portfolio/1.0"

// Client is the HTTP client used for fetches. No overall timeout: callers bound
// a fetch with their context.
var Client = &http.Client{Transport: &http.Transport{
	Proxy:                 http.ProxyFromEnvironment,
	ResponseHeaderTimeout: 30 * time.Second,
}}

// IsRemote reports whether path is an http(s) URL rather than a local file.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Download fetches url and saves it under destDir. The filename comes from
// Content-Disposition or the URL path; the extension from the URL or
// Content-Type. Returns the path of the saved file. destDir is created if needed.
// A partially written file is removed on error.
func Download(ctx context.Context, url string, destDir string) (savedPath string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	resp, err := Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", url, resp.StatusCode)
	}
	ext := extensionFromURL(url)
	if ext == "" {
		ext = extensionFromContentType(resp.Header.Get("Content-Type"))
	}
	if ext == "" {
		ext = ".bin"
	}
	name := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = filenameFromURL(url)
	}
	name = sanitizeFilename(name)
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name = name + ext
	}
	savedPath = filepath.Join(destDir, name)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	out, err := os.Create(savedPath)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("download: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("download: %w", err)
	}
	return savedPath, nil
}

func filenameFromContentDisposition(cd string) string {
	cd = strings.TrimSpace(cd)
	// filename="..."; or filename*=UTF-8''...
	if i := strings.Index(cd, "filename*=UTF-8''"); i >= 0 {
		s := cd[i+len("filename*=UTF-8''"):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.TrimSuffix(strings.Trim(s, "\""), filepath.Ext(s))
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		s := cd[i+len("filename="):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		s = strings.Trim(s, "\" ")
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return ""
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch ct {
	case "model/gltf-binary":
		return ".glb"
	case "model/gltf+json":
		return ".gltf"
	}
	return ""
}

var modelExts = map[string]bool{".glb": true, ".gltf": true}

func extensionFromURL(url string) string {
	path := url
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	ext := strings.ToLower(filepath.Ext(path))
	if modelExts[ext] {
		return ext
	}
	return ""
}

func filenameFromURL(url string) string {
	path := url
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, ".")
	if name == "" || name == "_" {
		return "download"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
