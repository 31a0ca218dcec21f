// Package filex contains small filesystem helpers shared by the stores and
// the asset manager.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and any missing parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the parent directory of path.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// UniquePath returns a destination path inside dir for the given filename,
// appending _1, _2, ... before the extension until a free name is found.
// The probe restarts at 1 on every call; existence is re-checked for each
// candidate.
func UniquePath(dir, filename string) string {
	dest := filepath.Join(dir, filename)

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	counter := 1
	for {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			return dest
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
		counter++
	}
}
