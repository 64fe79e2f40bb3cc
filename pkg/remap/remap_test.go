package remap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("maps default roots to third_party", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		table, err := Default(root, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []string{"closure", "jsunit"}, table.Roots())
		for _, name := range DefaultRoots {
			got := table.Lookup(name)
			assert.Equal(t, Found, got.Kind)
			assert.Equal(t, filepath.Join(root, "third_party"), got.Dir)
		}
	})

	t.Run("missing root is an error", func(t *testing.T) {
		t.Parallel()
		table, err := Default("", nil)
		require.ErrorIs(t, err, ErrRootNotSet)
		assert.Nil(t, table)
	})

	t.Run("adds extra entries", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		extra := t.TempDir()
		table, err := Default(root, map[string]string{"fixtures": extra})
		require.NoError(t, err)

		assert.Equal(t, 3, table.Len())
		got := table.Lookup("fixtures")
		assert.Equal(t, Found, got.Kind)
		assert.Equal(t, extra, got.Dir)
	})

	t.Run("extra entries cannot replace built-in roots", func(t *testing.T) {
		t.Parallel()
		_, err := Default(t.TempDir(), map[string]string{"closure": "/tmp"})
		require.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries map[string]string
		wantErr bool
	}{
		{name: "empty table", entries: nil},
		{name: "single segment", entries: map[string]string{"lib": "/srv/lib"}},
		{name: "empty key", entries: map[string]string{"": "/srv"}, wantErr: true},
		{name: "dot key", entries: map[string]string{".": "/srv"}, wantErr: true},
		{name: "dotdot key", entries: map[string]string{"..": "/srv"}, wantErr: true},
		{name: "nested key", entries: map[string]string{"a/b": "/srv"}, wantErr: true},
		{name: "empty dir", entries: map[string]string{"lib": ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table, err := New(map[string]string{"closure": "/srv/third_party"})
	require.NoError(t, err)

	assert.Equal(t, Found, table.Lookup("closure").Kind)
	assert.Equal(t, NotConfigured, table.Lookup("Closure").Kind, "keys are case-sensitive")
	assert.Equal(t, NotConfigured, table.Lookup("").Kind)
	assert.Equal(t, NotConfigured, table.Lookup("jsunit").Kind)

	var nilTable *Table
	assert.Equal(t, NotConfigured, nilTable.Lookup("closure").Kind)
}

func TestTable_EntriesIsCopy(t *testing.T) {
	t.Parallel()

	table, err := New(map[string]string{"closure": "/srv/third_party"})
	require.NoError(t, err)

	entries := table.Entries()
	entries["jsunit"] = "/elsewhere"
	delete(entries, "closure")

	assert.Equal(t, Found, table.Lookup("closure").Kind)
	assert.Equal(t, NotConfigured, table.Lookup("jsunit").Kind)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	got := Resolve("/srv/third_party", []string{"closure", "goog", "base.js"})
	assert.Equal(t, filepath.Join("/srv/third_party", "closure", "goog", "base.js"), got)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	ok := ReadFile(path)
	assert.Equal(t, FileOK, ok.Kind)
	assert.Equal(t, []byte("hello"), ok.Body)

	missing := ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Equal(t, FileNotFound, missing.Kind)
	assert.Error(t, missing.Err)

	asDir := ReadFile(dir)
	assert.Equal(t, FileNotFound, asDir.Kind)
}
