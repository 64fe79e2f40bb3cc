package remap

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ThirdPartyDir is the directory under the base root that the default
// remap roots point at.
const ThirdPartyDir = "third_party"

// DefaultRoots are the remap roots present in every default table.
var DefaultRoots = []string{"closure", "jsunit"}

var (
	// ErrRootNotSet is returned when the base directory the default
	// table is built from has not been configured.
	ErrRootNotSet = errors.New("remap base directory is not set")

	// ErrInvalidKey is returned for remap roots that are not a single path segment.
	ErrInvalidKey = errors.New("invalid remap root")
)

// Kind tags the outcome of a Lookup.
type Kind int

const (
	// NotConfigured means the segment has no entry; the request falls
	// through to static serving.
	NotConfigured Kind = iota
	// Found means the segment is a remap root.
	Found
)

// Lookup is the result of looking a path segment up in a Table.
type Lookup struct {
	Kind Kind
	Dir  string
}

// Table is an immutable mapping from a remap root to a directory.
type Table struct {
	entries map[string]string
}

// New builds a Table from the given entries. Keys must be single path
// segments; directories are made absolute and cleaned.
func New(entries map[string]string) (*Table, error) {
	t := &Table{entries: make(map[string]string, len(entries))}
	for key, dir := range entries {
		if err := validateKey(key); err != nil {
			return nil, err
		}
		if dir == "" {
			return nil, fmt.Errorf("remap root %q: empty directory", key)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("remap root %q: %w", key, err)
		}
		t.entries[key] = abs
	}
	return t, nil
}

// Default builds the standard table from the base root directory: every
// name in DefaultRoots maps to <root>/third_party. Extra entries are added
// on top but may not replace a default root.
func Default(root string, extra map[string]string) (*Table, error) {
	if root == "" {
		return nil, ErrRootNotSet
	}

	thirdParty := filepath.Join(root, ThirdPartyDir)
	entries := make(map[string]string, len(DefaultRoots)+len(extra))
	for _, name := range DefaultRoots {
		entries[name] = thirdParty
	}
	for key, dir := range extra {
		if _, ok := entries[key]; ok {
			return nil, fmt.Errorf("%w: %q is a built-in remap root", ErrInvalidKey, key)
		}
		entries[key] = dir
	}
	return New(entries)
}

func validateKey(key string) error {
	switch {
	case key == "", key == ".", key == "..":
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	case strings.ContainsAny(key, `/\`):
		return fmt.Errorf("%w: %q must be a single path segment", ErrInvalidKey, key)
	}
	return nil
}

// Lookup reports whether segment is a remap root. Matching is case-sensitive.
func (t *Table) Lookup(segment string) Lookup {
	if t == nil {
		return Lookup{Kind: NotConfigured}
	}
	dir, ok := t.entries[segment]
	if !ok {
		return Lookup{Kind: NotConfigured}
	}
	return Lookup{Kind: Found, Dir: dir}
}

// Len returns the number of remap roots.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the table.
func (t *Table) Entries() map[string]string {
	if t == nil {
		return map[string]string{}
	}
	return maps.Clone(t.entries)
}

// Roots returns the remap roots in sorted order.
func (t *Table) Roots() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

// Resolve joins every path segment, the remap root included, under dir.
func Resolve(dir string, segments []string) string {
	return filepath.Join(append([]string{dir}, segments...)...)
}

// FileKind tags the outcome of ReadFile.
type FileKind int

const (
	// FileNotFound covers missing, unreadable and directory targets.
	FileNotFound FileKind = iota
	// FileOK means Body holds the file contents.
	FileOK
)

// FileResult is the result of reading a remapped file.
type FileResult struct {
	Kind FileKind
	Body []byte
	Err  error
}

// ReadFile reads the file at path.
func ReadFile(path string) FileResult {
	body, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Kind: FileNotFound, Err: err}
	}
	return FileResult{Kind: FileOK, Body: body}
}
