package generator

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/embedgen/embedgen/internal/config"
)

// CollectEntries discovers every regular file under root, recursively.
// Relative paths are forward-slashed regardless of platform, configured
// exclude patterns are applied, and the result is sorted by relative path.
// Two distinct paths that sanitize to the same symbol are rejected.
//
// Returns:
//   - []FileEntry: One entry per discovered file, sorted by RelPath.
//   - error: An error if the walk fails or a symbol collision is found.
func CollectEntries(root string, cfg *config.Config) ([]FileEntry, error) {
	var matcher *ignore.GitIgnore
	if len(cfg.Exclude) > 0 {
		matcher = ignore.CompileIgnoreLines(cfg.Exclude...)
	}

	var entries []FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// Match "dir/" patterns against the directory itself so the
			// whole subtree is pruned in one step.
			if matcher != nil && (matcher.MatchesPath(rel) || matcher.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		entries = append(entries, FileEntry{
			RelPath:     rel,
			Symbol:      SanitizeIdentifier(rel),
			ContentType: ContentTypeFor(rel, cfg),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelPath < entries[j].RelPath
	})

	// Sanitization collapses '/', '\', '-' and '.' into '_', so distinct
	// paths can map to the same symbol. Silently collapsing them would
	// discard data, so reject the run instead.
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.Symbol]; ok {
			return nil, fmt.Errorf("symbol collision: %q and %q both sanitize to %q", prev, e.RelPath, e.Symbol)
		}
		seen[e.Symbol] = e.RelPath
	}

	return entries, nil
}
