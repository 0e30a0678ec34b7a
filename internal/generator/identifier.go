package generator

import (
	"mime"
	"path"
	"strings"

	"github.com/embedgen/embedgen/internal/config"
)

var identReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	"-", "_",
	".", "_",
)

// SanitizeIdentifier derives a C identifier from a relative file path by
// replacing path separators, hyphens, and dots with underscores. The
// transformation is total but not injective; CollectEntries rejects paths
// whose symbols collide.
func SanitizeIdentifier(relPath string) string {
	return identReplacer.Replace(relPath)
}

// ContentTypeFor guesses a MIME type from the file's extension. Configured
// overrides win over the standard extension table; the configured fallback
// applies when no mapping exists. Any parameters returned by the standard
// table (e.g. "; charset=utf-8") are stripped so the generated table holds
// bare types.
func ContentTypeFor(relPath string, cfg *config.Config) string {
	ext := path.Ext(relPath)

	if t, ok := cfg.Mime.Overrides[ext]; ok {
		return t
	}

	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}

	return cfg.Output.FallbackType
}
