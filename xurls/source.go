// Package xurls provides a text-file URL source backed by the xurls
// extractor. Curated source lists are often loose notes with URLs
// scattered through prose, so URLs are extracted rather than parsed
// line by line.
package xurls

import (
	"context"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/lksrz/mcpfinder"
	"mvdan.cc/xurls/v2"
)

// IgnoredExtensions lists asset extensions that never carry server
// definitions and are not worth fetching.
var IgnoredExtensions = map[string]bool{
	".ico":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".svg":  true,
	".css":  true,
	".js":   true,
}

// Ensure FileSource implements mcpfinder.URLSource at compile time.
var _ mcpfinder.URLSource = (*FileSource)(nil)

// FileSource extracts URLs from a free-form text file, dropping asset
// URLs by extension. First-occurrence order is preserved; duplicates
// are removed.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading the given text file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// URLs reads the file and returns the filtered URL list.
func (s *FileSource) URLs(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcpfinder.Errorf(mcpfinder.ENOTFOUND, "URL file not found: %s", s.path)
		}
		return nil, err
	}

	seen := make(map[string]bool)
	var urls []string
	for _, raw := range xurls.Strict().FindAllString(string(data), -1) {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		if ignoredAsset(raw) {
			continue
		}
		urls = append(urls, raw)
	}
	return urls, nil
}

// ignoredAsset reports whether the URL path ends in an ignored asset
// extension. Unparseable URLs are kept; the fetcher surfaces the real
// error later.
func ignoredAsset(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return IgnoredExtensions[strings.ToLower(path.Ext(u.Path))]
}
