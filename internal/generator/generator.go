package generator

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/embedgen/embedgen/internal/config"
)

// Options contains optional flags for the generation process.
type Options struct {
	// DisableIndexAlias, if true, overrides the configuration to suppress
	// the "/" alias row for a top-level index.html.
	DisableIndexAlias bool
}

// FileEntry describes one discovered file. One entry is collected per file
// during the walk and serialized into the lookup table of the definitions
// artifact.
type FileEntry struct {
	// RelPath is the path relative to the input folder, forward-slashed.
	RelPath string
	// Symbol is the sanitized C identifier naming the byte array.
	Symbol string
	// ContentType is the MIME type guessed from the file extension.
	ContentType string
	// Length is the file's size in bytes, filled in during emission.
	Length uint
}

// Generate walks inputDir and writes <outputBase>.c and <outputBase>.h.
// The .c file holds one byte-array constant and length per file plus the
// embedded_files table; the .h file holds the embedded_file_t typedef and
// extern declarations for everything in the .c file.
//
// Parameters:
//   - cfg: The configuration, with defaults applied.
//   - inputDir: The folder whose files are embedded.
//   - outputBase: The path prefix of the two generated files.
//   - opts: Additional generation options.
//
// Returns:
//   - error: An error if any step of the generation fails. Partially
//     written artifacts are left behind on failure.
func Generate(cfg *config.Config, inputDir, outputBase string, opts Options) error {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("folder %q not found", inputDir)
	}

	// 1. Discover files. Entries come back sorted by relative path so a
	// second run over an unchanged folder produces identical output.
	entries, err := CollectEntries(inputDir, cfg)
	if err != nil {
		return err
	}
	slog.Debug("collected entries", "count", len(entries))

	cPath := outputBase + ".c"
	hPath := outputBase + ".h"

	// 2. Write the definitions artifact.
	cf, err := os.Create(cPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cPath, err)
	}
	defer cf.Close()
	w := bufio.NewWriter(cf)

	fmt.Fprintf(w, "// Auto-generated embedded files. Do not edit.\n\n")
	fmt.Fprintf(w, "#include %q\n\n", filepath.Base(hPath))

	for i := range entries {
		fullPath := filepath.Join(inputDir, filepath.FromSlash(entries[i].RelPath))
		if err := writeByteArray(w, fullPath, &entries[i], cfg.Output.BytesPerLine); err != nil {
			return err
		}
		slog.Debug("embedded file", "path", entries[i].RelPath, "bytes", entries[i].Length, "type", entries[i].ContentType)
	}

	aliasIndex := *cfg.Output.IndexAlias && !opts.DisableIndexAlias
	rows := writeTable(w, entries, aliasIndex)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", cPath, err)
	}
	if err := cf.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", cPath, err)
	}

	// 3. Write the declarations artifact.
	if err := generateHeader(hPath, entries); err != nil {
		return err
	}

	slog.Info("generation complete", "files", len(entries), "rows", rows, "definitions", cPath, "declarations", hPath)
	return nil
}

// writeTable emits the embedded_files table and its count. A top-level
// index.html additionally gets a row served at "/" when aliasIndex is set.
// Returns the number of rows written.
func writeTable(w *bufio.Writer, entries []FileEntry, aliasIndex bool) int {
	rows := 0
	fmt.Fprintf(w, "embedded_file_t embedded_files[] = {\n")
	for _, e := range entries {
		fmt.Fprintf(w, "    {\"/%s\", %s, %s_len, \"%s\"},\n", e.RelPath, e.Symbol, e.Symbol, e.ContentType)
		rows++
		if aliasIndex && e.RelPath == "index.html" {
			fmt.Fprintf(w, "    {\"/\", %s, %s_len, \"%s\"},\n", e.Symbol, e.Symbol, e.ContentType)
			rows++
		}
	}
	fmt.Fprintf(w, "};\n\n")
	fmt.Fprintf(w, "int embedded_files_count = sizeof(embedded_files) / sizeof(embedded_files[0]);\n")
	return rows
}
