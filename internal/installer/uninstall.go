package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/fsops"
)

// CleanupWarning records an artifact that could not be removed.
type CleanupWarning struct {
	Path string
	Err  error
}

func (w CleanupWarning) String() string {
	return fmt.Sprintf("could not remove %s: %v", w.Path, w.Err)
}

// UninstallReport summarizes an uninstall run.
type UninstallReport struct {
	Removed    []string
	Warnings   []CleanupWarning
	DirRemoved bool
}

// Uninstall removes every known artifact for every OS, then the staging
// directory if it is left empty. It never fails: problems are logged and
// collected as warnings.
func (i *Installer) Uninstall(ctx context.Context) *UninstallReport {
	report := &UninstallReport{}
	stagingDir := i.Paths.StagingDir()

	for _, name := range core.AllArtifacts() {
		if ctx.Err() != nil {
			i.Log.Warn().Err(ctx.Err()).Msg("uninstall interrupted")
			return report
		}

		path := filepath.Join(stagingDir, name)
		removed, err := fsops.RemoveIfExists(i.Fs, path)
		if err != nil {
			i.Log.Warn().Err(err).Str("path", path).Msg("could not remove artifact")
			report.Warnings = append(report.Warnings, CleanupWarning{Path: path, Err: err})
			continue
		}
		if removed {
			i.Log.Debug().Str("path", path).Msg("artifact removed")
			report.Removed = append(report.Removed, name)
		}
	}

	dirRemoved, err := fsops.RemoveDirIfEmpty(i.Fs, stagingDir)
	if err != nil {
		i.Log.Debug().Err(err).Str("dir", stagingDir).Msg("staging directory left in place")
	}
	report.DirRemoved = dirRemoved

	return report
}
