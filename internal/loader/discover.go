package loader

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Glob walks root recursively and returns every regular file whose
// base name matches the pattern. Matches are sorted lexicographically
// by path so discovery order is deterministic regardless of the
// filesystem's enumeration order.
func Glob(root, pattern string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := path.Match(pattern, d.Name())
		if err != nil {
			return fmt.Errorf("loader: bad pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loader: walking %s: %w", root, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// YearPattern narrows a file pattern to names carrying the given
// year token, e.g. Turbine_Data*.csv -> Turbine_Data*2019*.csv.
func YearPattern(pattern string, year int) string {
	ext := path.Ext(pattern)
	base := strings.TrimSuffix(pattern, ext)
	return fmt.Sprintf("%s%d*%s", base, year, ext)
}
