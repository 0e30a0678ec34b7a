package generator

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/embedgen/embedgen/internal/templates"
)

// generateHeader generates the declarations artifact (<output_base>.h).
// Alias rows reference existing symbols, so only real entries get extern
// declarations.
func generateHeader(outputPath string, entries []FileEntry) error {
	data := struct {
		Guard   string
		Entries []FileEntry
	}{
		Guard:   headerGuard(outputPath),
		Entries: entries,
	}

	return executeTemplate("embedded.h.tmpl", outputPath, data)
}

// headerGuard derives an include-guard macro from the header's file name,
// e.g. "out/embedded_build.h" -> "EMBEDDED_BUILD_H".
func headerGuard(outputPath string) string {
	base := filepath.Base(outputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToUpper(SanitizeIdentifier(base)) + "_H"
}

// executeTemplate loads the named template and executes it to outputPath.
func executeTemplate(tmplName string, outputPath string, data interface{}) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	t, err := template.New(tmplName).Parse(tmplContent)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Execute(f, data)
}
