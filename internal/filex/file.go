// Package filex contains filesystem helpers for saving downloaded files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// EnsureDir makes sure dir exists and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// TempPartPath returns a collision-free temporary path inside dir.
// Downloads are streamed here first and renamed into place afterwards, so a
// failed transfer never leaves a truncated file under the final name.
func TempPartPath(dir string) string {
	return filepath.Join(dir, "."+uuid.NewString()+".part")
}

// UniqueTarget returns a path in dir for name that does not collide with an
// existing file, appending " (1)", " (2)", ... before the extension when
// needed.
func UniqueTarget(dir, name string) string {
	target := filepath.Join(dir, name)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return target
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
