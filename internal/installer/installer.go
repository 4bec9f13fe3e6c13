// Package installer stages the platform binary and its wrappers, and
// removes them again.
package installer

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ml0-1337/claude-gate-install/internal/config"
	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/fsops"
	"github.com/ml0-1337/claude-gate-install/internal/locator"
	"github.com/ml0-1337/claude-gate-install/internal/paths"
	"github.com/ml0-1337/claude-gate-install/internal/platform"
	"github.com/ml0-1337/claude-gate-install/internal/transaction"
	"github.com/ml0-1337/claude-gate-install/internal/ui"
	"github.com/ml0-1337/claude-gate-install/internal/wrapper"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	dirPerm    = 0o755
	binaryPerm = 0o755
)

// FilesystemError reports a staging step that failed.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Is reports the error as core.ErrFilesystem.
func (e *FilesystemError) Is(target error) bool {
	return target == core.ErrFilesystem
}

// Installer owns the staging directory of one package installation.
type Installer struct {
	Fs    afero.Fs
	Paths *paths.Resolver
	Log   *zerolog.Logger

	// ProgressOut, when set, receives a byte progress bar for the copy.
	ProgressOut io.Writer
}

// New creates an Installer on the OS filesystem.
func New(cfg *config.Config, log *zerolog.Logger) *Installer {
	return NewWithFs(cfg, log, afero.NewOsFs())
}

// NewWithFs creates an Installer with an injected filesystem (for tests).
func NewWithFs(cfg *config.Config, log *zerolog.Logger, fs afero.Fs) *Installer {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Installer{
		Fs:    fs,
		Paths: paths.NewResolver(cfg),
		Log:   log,
	}
}

// Result describes a completed install.
type Result struct {
	Platform     *platform.Descriptor
	Source       string
	StagedBinary string
	Wrappers     []string
}

// Install resolves osType/archType, locates the platform binary and stages
// it with Stage.
func (i *Installer) Install(ctx context.Context, osType, archType string) (*Result, error) {
	d, err := platform.Resolve(osType, archType)
	if err != nil {
		return nil, err
	}
	i.Log.Debug().Str("platform", d.Key()).Str("package", d.PackageName).Msg("platform resolved")

	source, err := i.Locate(d)
	if err != nil {
		return nil, err
	}
	i.Log.Debug().Str("source", source).Msg("platform binary found")

	return i.Stage(ctx, d, source)
}

// Stage copies source into the staging dir as d's binary and writes the
// wrappers. On a failure every artifact this run created is removed again.
func (i *Installer) Stage(ctx context.Context, d *platform.Descriptor, source string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx := transaction.NewManager(i.Log)
	res, err := i.stage(ctx, tx, d, source)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			i.Log.Warn().Err(rbErr).Msg("rollback left artifacts behind")
		}
		return nil, err
	}
	tx.Commit()

	i.Log.Info().
		Str("platform", d.Key()).
		Str("staged", res.StagedBinary).
		Strs("wrappers", res.Wrappers).
		Msg("install completed")

	return res, nil
}

// Locate finds d's binary across the configured candidate bases.
func (i *Installer) Locate(d *platform.Descriptor) (string, error) {
	return locator.Locate(i.Fs, d, i.Paths.CandidateBases(d))
}

func (i *Installer) stage(ctx context.Context, tx *transaction.Manager, d *platform.Descriptor, source string) (*Result, error) {
	stagingDir := i.Paths.StagingDir()

	if !fsops.IsDir(i.Fs, stagingDir) {
		if err := fsops.EnsureDir(i.Fs, stagingDir, dirPerm); err != nil {
			return nil, &FilesystemError{Op: "create directory", Path: stagingDir, Err: err}
		}
		tx.TrackDir(i.Fs, stagingDir)
	}

	target := filepath.Join(stagingDir, d.StagedBinaryName())
	i.trackIfNew(tx, target)
	if err := i.replaceBinary(d, source, target); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, name := range wrapper.Names(d) {
		i.trackIfNew(tx, filepath.Join(stagingDir, name))
	}

	written, err := wrapper.Generate(i.Fs, stagingDir, target, d)
	if err != nil {
		return nil, &FilesystemError{Op: "write wrapper", Path: stagingDir, Err: err}
	}

	return &Result{
		Platform:     d,
		Source:       source,
		StagedBinary: target,
		Wrappers:     written,
	}, nil
}

// trackIfNew registers path for rollback unless a previous install left it.
func (i *Installer) trackIfNew(tx *transaction.Manager, path string) {
	if !fsops.Exists(i.Fs, path) {
		tx.TrackFile(i.Fs, path)
	}
}

// replaceBinary writes source to a temp file next to target and renames it
// into place, so a failed copy never truncates an existing binary.
func (i *Installer) replaceBinary(d *platform.Descriptor, source, target string) error {
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".tmp")

	fail := func(op string, err error) error {
		if _, rmErr := fsops.RemoveIfExists(i.Fs, tmp); rmErr != nil {
			i.Log.Warn().Err(rmErr).Str("path", tmp).Msg("could not remove temp file")
		}
		return &FilesystemError{Op: op, Path: target, Err: err}
	}

	if err := i.copyBinary(source, tmp); err != nil {
		return fail("copy binary", err)
	}
	if !d.IsWindows {
		if err := i.Fs.Chmod(tmp, binaryPerm); err != nil {
			return fail("chmod", err)
		}
	}
	if err := i.Fs.Rename(tmp, target); err != nil {
		return fail("replace binary", err)
	}
	return nil
}

func (i *Installer) copyBinary(source, target string) error {
	if i.ProgressOut == nil {
		_, err := fsops.CopyFile(i.Fs, source, target, binaryPerm, nil)
		return err
	}

	size, err := fsops.Size(i.Fs, source)
	if err != nil {
		return err
	}
	bar := ui.NewCopyProgress(i.ProgressOut, size, "Copying "+core.CommandName)
	if _, err := fsops.CopyFile(i.Fs, source, target, binaryPerm, bar); err != nil {
		return err
	}
	return bar.Finish()
}
