// Package locator finds a platform package's binary among candidate
// directories.
package locator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/fsops"
	"github.com/ml0-1337/claude-gate-install/internal/platform"
	"github.com/spf13/afero"
)

// BinaryNotFoundError is returned when no candidate holds the binary.
type BinaryNotFoundError struct {
	PackageName string
	Searched    []string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("could not find platform binary for %s (searched: %s)",
		e.PackageName, strings.Join(e.Searched, ", "))
}

// Is reports the error as core.ErrBinaryNotFound.
func (e *BinaryNotFoundError) Is(target error) bool {
	return target == core.ErrBinaryNotFound
}

// Locate returns the path of d's binary in the first base that contains
// it. Bases are probed in order and only existence is checked.
func Locate(fs afero.Fs, d *platform.Descriptor, bases []string) (string, error) {
	searched := make([]string, 0, len(bases))
	for _, base := range bases {
		candidate := filepath.Join(base, d.BinaryName())
		if fsops.IsFile(fs, candidate) {
			return candidate, nil
		}
		searched = append(searched, candidate)
	}

	return "", &BinaryNotFoundError{
		PackageName: d.PackageName,
		Searched:    searched,
	}
}
