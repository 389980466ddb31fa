package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileNames lists the style files looked up in each directory, in priority order.
var FileNames = []string{
	".cmake_format",
	".cmake-format.yaml",
	".cmake-format.yml",
	".cmake-format.toml",
}

// Find walks from startDir up to the filesystem root and returns the first
// style file it meets.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil {
				if info.IsDir() {
					continue
				}
				return candidate, true, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
