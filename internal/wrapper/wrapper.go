// Package wrapper writes the shims that expose the staged binary under the
// public command name.
package wrapper

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/platform"
	"github.com/ml0-1337/claude-gate-install/internal/security"
	"github.com/spf13/afero"
)

const (
	scriptPerm = 0o755
	filePerm   = 0o644
)

// Names returns the wrapper filenames written for d.
func Names(d *platform.Descriptor) []string {
	if d.IsWindows {
		return []string{core.WrapperBatch, core.WrapperPowerShell}
	}
	return []string{core.WrapperUnix}
}

// Render returns wrapper file name to content for d without touching the
// filesystem.
func Render(stagedBinary string, d *platform.Descriptor) (map[string]string, error) {
	if err := security.ValidateScriptPath(stagedBinary, d.IsWindows); err != nil {
		return nil, err
	}

	if d.IsWindows {
		return map[string]string{
			core.WrapperBatch:      batchScript(stagedBinary),
			core.WrapperPowerShell: powerShellScript(stagedBinary),
		}, nil
	}

	return map[string]string{
		core.WrapperUnix: shellScript(stagedBinary),
	}, nil
}

// shellScript replaces the shell with the binary so exit status and
// signals reach the caller unchanged.
func shellScript(bin string) string {
	return fmt.Sprintf("#!/bin/sh\nexec \"%s\" \"$@\"\n", bin)
}

func batchScript(bin string) string {
	return strings.Join([]string{
		"@echo off",
		fmt.Sprintf("\"%s\" %%*", bin),
		"exit /b %ERRORLEVEL%",
		"",
	}, "\r\n")
}

func powerShellScript(bin string) string {
	quoted := "'" + strings.ReplaceAll(bin, "'", "''") + "'"
	return fmt.Sprintf("& %s @args\nexit $LASTEXITCODE\n", quoted)
}

// Generate writes the wrapper set for d into targetDir, overwriting any
// existing files, and returns the written paths in name order.
func Generate(fs afero.Fs, targetDir, stagedBinary string, d *platform.Descriptor) ([]string, error) {
	scripts, err := Render(stagedBinary, d)
	if err != nil {
		return nil, fmt.Errorf("render wrapper: %w", err)
	}

	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	perm := os.FileMode(filePerm)
	if !d.IsWindows {
		perm = scriptPerm
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(targetDir, name)
		if err := afero.WriteFile(fs, path, []byte(scripts[name]), perm); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		// WriteFile keeps the mode of a file that already existed.
		if err := fs.Chmod(path, perm); err != nil {
			return written, fmt.Errorf("chmod %s: %w", name, err)
		}
		written = append(written, path)
	}

	return written, nil
}
