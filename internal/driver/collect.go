package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsCMakeFile reports whether a file name looks like a CMake script:
// CMakeLists.txt or *.cmake (any case).
func IsCMakeFile(path string) bool {
	base := filepath.Base(path)
	if strings.EqualFold(base, "CMakeLists.txt") {
		return true
	}
	return strings.EqualFold(filepath.Ext(base), ".cmake")
}

// skipDir reports directories never walked: hidden ones and CMake's own
// build bookkeeping, which is full of generated .cmake files.
func skipDir(name string) bool {
	if name == "CMakeFiles" || name == "_deps" {
		return true
	}
	return len(name) > 1 && strings.HasPrefix(name, ".")
}

// collectSourceFiles expands paths into a sorted, de-duplicated file list.
// Files named explicitly are taken whatever their name; directories are
// walked for CMake scripts.
func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if IsCMakeFile(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
