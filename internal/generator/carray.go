package generator

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// writeByteArray reads the file at fullPath and writes its contents to w as
// a C string literal with two-digit hex escapes, bytesPerLine escapes per
// quoted line, followed by a length constant holding the exact byte count.
// The whole file is read into memory; a read failure aborts the run.
//
// The entry's Length field is filled in as a side effect.
func writeByteArray(w io.Writer, fullPath string, e *FileEntry, bytesPerLine int) error {
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", e.RelPath, err)
	}
	e.Length = uint(len(data))

	fmt.Fprintf(w, "// File: %s\n", e.RelPath)
	fmt.Fprintf(w, "const unsigned char %s[] = \n", e.Symbol)

	if len(data) == 0 {
		fmt.Fprintf(w, "\"\"\n")
	} else {
		var line strings.Builder
		line.WriteByte('"')
		for i, b := range data {
			fmt.Fprintf(&line, "\\x%02x", b)
			if (i+1)%bytesPerLine == 0 {
				fmt.Fprintf(w, "%s\"\n", line.String())
				line.Reset()
				line.WriteByte('"')
			}
		}
		if line.Len() > 1 {
			fmt.Fprintf(w, "%s\"\n", line.String())
		}
	}

	fmt.Fprintf(w, ";\n")
	fmt.Fprintf(w, "const unsigned int %s_len = %d;\n\n", e.Symbol, len(data))
	return nil
}
