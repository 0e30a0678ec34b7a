package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/embedgen/embedgen/internal/config"
)

func defaultConfig() *config.Config {
	var cfg config.Config
	config.ApplyDefaults(&cfg)
	return &cfg
}

// writeTree creates the named files (with trivial content) under a fresh
// temp dir and returns its path.
func writeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestCollectEntriesSortedAndSlashed(t *testing.T) {
	root := writeTree(t,
		"index.html",
		"css/style.css",
		"js/app.js",
		"assets/img/logo.png",
	)

	entries, err := CollectEntries(root, defaultConfig())
	if err != nil {
		t.Fatalf("CollectEntries: %v", err)
	}

	want := []string{
		"assets/img/logo.png",
		"css/style.css",
		"index.html",
		"js/app.js",
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.RelPath != want[i] {
			t.Errorf("entries[%d].RelPath = %q, want %q", i, e.RelPath, want[i])
		}
		if strings.ContainsRune(e.RelPath, '\\') {
			t.Errorf("entries[%d].RelPath = %q contains a backslash", i, e.RelPath)
		}
		if strings.ContainsAny(e.Symbol, `/\-.`) {
			t.Errorf("entries[%d].Symbol = %q contains forbidden characters", i, e.Symbol)
		}
	}
}

func TestCollectEntriesSymbolCollision(t *testing.T) {
	// Both sanitize to a_b_txt.
	root := writeTree(t, "a-b.txt", "a.b.txt")

	_, err := CollectEntries(root, defaultConfig())
	if err == nil {
		t.Fatal("expected collision error, got nil")
	}
	if !strings.Contains(err.Error(), "symbol collision") {
		t.Errorf("error = %q, want symbol collision", err)
	}
}

func TestCollectEntriesExcludePatterns(t *testing.T) {
	root := writeTree(t,
		"index.html",
		"app.js.map",
		"node_modules/lib/lib.js",
	)

	cfg := defaultConfig()
	cfg.Exclude = []string{"*.map", "node_modules/"}

	entries, err := CollectEntries(root, cfg)
	if err != nil {
		t.Fatalf("CollectEntries: %v", err)
	}
	if len(entries) != 1 || entries[0].RelPath != "index.html" {
		t.Errorf("entries = %+v, want only index.html", entries)
	}
}

func TestCollectEntriesEmptyDir(t *testing.T) {
	entries, err := CollectEntries(t.TempDir(), defaultConfig())
	if err != nil {
		t.Fatalf("CollectEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
