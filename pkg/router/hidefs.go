package router

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matchHidden reports whether name, a slash-separated path, matches any of
// the doublestar patterns. The leading separator is ignored.
func matchHidden(patterns []string, name string) bool {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return false
	}
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// hiddenFS hides matching paths from a file system: they cannot be opened
// and are left out of directory listings.
type hiddenFS struct {
	fs       http.FileSystem
	patterns []string
}

func (h hiddenFS) Open(name string) (http.File, error) {
	if matchHidden(h.patterns, name) {
		return nil, fs.ErrNotExist
	}
	f, err := h.fs.Open(name)
	if err != nil {
		return nil, err
	}
	if len(h.patterns) == 0 {
		return f, nil
	}
	return hiddenFile{File: f, dir: name, patterns: h.patterns}, nil
}

// hiddenFile filters Readdir. It has no ReadDir method, so
// http.FileServer lists directories through Readdir.
type hiddenFile struct {
	http.File
	dir      string
	patterns []string
}

func (f hiddenFile) Readdir(count int) ([]fs.FileInfo, error) {
	entries, err := f.File.Readdir(count)
	kept := entries[:0]
	for _, e := range entries {
		if !matchHidden(f.patterns, path.Join(f.dir, e.Name())) {
			kept = append(kept, e)
		}
	}
	return kept, err
}
