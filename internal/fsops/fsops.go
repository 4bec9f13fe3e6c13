package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// EnsureDir ensures a directory exists with the given permissions
func EnsureDir(fs afero.Fs, path string, perm os.FileMode) error {
	if err := fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("ensure directory: %w", err)
	}
	return nil
}

// Exists checks if a path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsFile checks if a path exists and is not a directory
func IsFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Size returns the size of the file at path.
func Size(fs afero.Fs, path string) (int64, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}
	return info.Size(), nil
}

// CopyFile streams src into dst, truncating dst if it exists. Bytes are
// mirrored to progress when it is non-nil.
func CopyFile(fs afero.Fs, src, dst string, perm os.FileMode, progress io.Writer) (n int64, err error) {
	srcFile, err := fs.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		if cerr := dstFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close destination: %w", cerr)
		}
	}()

	var w io.Writer = dstFile
	if progress != nil {
		w = io.MultiWriter(dstFile, progress)
	}

	if n, err = io.Copy(w, srcFile); err != nil {
		return n, fmt.Errorf("copy contents: %w", err)
	}

	if err = dstFile.Sync(); err != nil {
		return n, fmt.Errorf("sync destination: %w", err)
	}

	return n, nil
}

// RemoveIfExists removes a single file. A missing file is not an error and
// reports removed=false.
func RemoveIfExists(fs afero.Fs, path string) (removed bool, err error) {
	if _, err := fs.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat: %w", err)
	}

	if err := fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveDirIfEmpty removes dir only when it has no entries. It never
// removes contents.
func RemoveDirIfEmpty(fs afero.Fs, dir string) (bool, error) {
	if !IsDir(fs, dir) {
		return false, nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return false, fmt.Errorf("read directory: %w", err)
	}
	if len(entries) > 0 {
		return false, nil
	}

	if err := fs.Remove(dir); err != nil {
		return false, fmt.Errorf("remove directory: %w", err)
	}
	return true, nil
}
