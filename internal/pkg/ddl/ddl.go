// Package ddl reads Spanner schema scripts.
package ddl

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReadDir returns the statements of every .sql file in dir, files in
// name order.
func ReadDir(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []string
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, Split(string(b))...)
	}
	return out, nil
}

// Split splits a script on ';' and drops "--" comment lines.
func Split(sql string) []string {
	// Normalize line endings for Windows-authored files.
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
