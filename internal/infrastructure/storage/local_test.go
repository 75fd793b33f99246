package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_SaveAndRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	url, err := store.Save("foto.png", strings.NewReader("contenido"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix) {
		t.Fatalf("expected url under %s, got %q", URLPrefix, url)
	}
	if !strings.HasSuffix(url, "_foto.png") {
		t.Fatalf("expected original filename in stored name, got %q", url)
	}

	stored := filepath.Join(store.Dir(), strings.TrimPrefix(url, URLPrefix))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "contenido" {
		t.Fatalf("unexpected file content: %q", data)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Fatalf("expected file gone, got %v", err)
	}

	// Removing twice is idempotent.
	if err := store.Remove(url); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestLocalStore_SaveGeneratesDistinctNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	first, err := store.Save("foto.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save("foto.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct stored names, both %q", first)
	}
}

func TestLocalStore_RemoveIgnoresForeignURLs(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	marker := filepath.Join(dir, "keep.png")
	if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing marker: %v", err)
	}

	for _, url := range []string{
		"https://cdn.example.com/foto.png",
		"/etc/passwd",
		URLPrefix + "../../etc/passwd",
	} {
		if err := store.Remove(url); err != nil {
			t.Fatalf("Remove(%q): %v", url, err)
		}
	}

	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("file outside the store was touched: %v", err)
	}
}
