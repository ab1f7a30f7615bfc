package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/honeybbq/serviceast/pkg/serviceast"
)

// writeBundle writes every source to w. Multiple sources are separated by a
// "// ==> name" header line.
func writeBundle(w io.Writer, bundle *serviceast.Bundle) error {
	multi := len(bundle.Sources) > 1
	for i, src := range bundle.Sources {
		if multi {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "// ==> %s\n", src.Name)
		}
		if _, err := w.Write(src.Content); err != nil {
			return err
		}
	}
	return nil
}

// writeBundleToFiles writes a single-source bundle to out, unless out is a
// directory (existing or ending in a separator) or the bundle has several
// sources; then each source goes to out/<name>.
func writeBundleToFiles(out string, bundle *serviceast.Bundle) error {
	if len(bundle.Sources) == 0 {
		return nil
	}
	if !isDirTarget(out) && len(bundle.Sources) == 1 {
		if err := os.WriteFile(out, bundle.Sources[0].Content, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Debugf("wrote %s", out)
		return nil
	}

	for _, src := range bundle.Sources {
		rel := filepath.Clean(strings.TrimPrefix(src.Name, "/"))
		if rel == "." || strings.HasPrefix(rel, "..") {
			return fmt.Errorf("invalid source name %q", src.Name)
		}
		target := filepath.Join(out, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directories for %q: %w", target, err)
		}
		if err := os.WriteFile(target, src.Content, 0o644); err != nil {
			return fmt.Errorf("write source %q: %w", target, err)
		}
		logger.Debugf("wrote %s", target)
	}
	return nil
}

func isDirTarget(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
