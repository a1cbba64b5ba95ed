// Package output writes the rewritten program to its destination.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stdout is the path that selects standard output instead of a file.
const Stdout = "-"

// DefaultPath derives the output file name from the input file name:
// "part.gcode" becomes "part_gradient.gcode".
func DefaultPath(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".gcode"
	}
	return base + "_gradient" + ext
}

// Write stores the program lines at path, one per line. The path "-"
// writes to standard output. Nothing is created until called, so a run
// that fails earlier leaves no partial file behind.
func Write(path string, lines []string) error {
	if path == Stdout {
		return writeTo(os.Stdout, lines)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := writeTo(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeTo(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for i, line := range lines {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
