package paths

import (
	"path/filepath"

	"github.com/ml0-1337/claude-gate-install/internal/config"
	"github.com/ml0-1337/claude-gate-install/internal/platform"
)

// Resolver computes the installer's directories from configuration.
type Resolver struct {
	packageDir string
	stagingDir string
}

// NewResolver creates a Resolver from the loaded configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		packageDir: cfg.Paths.PackageDir,
		stagingDir: cfg.Paths.StagingDir,
	}
}

// PackageDir returns the root of the installed package.
func (r *Resolver) PackageDir() string {
	return r.packageDir
}

// StagingDir returns the directory holding the staged artifact set.
func (r *Resolver) StagingDir() string {
	return r.stagingDir
}

// CandidateBases returns the directories probed for the platform binary,
// highest priority first:
//
//  1. <pkg>/node_modules/<package>          installed as a dependency
//  2. <pkg>/../<package>                    installed globally, side by side
//  3. <pkg>/../../npm-packages/<short-name> local development checkout
func (r *Resolver) CandidateBases(d *platform.Descriptor) []string {
	return []string{
		filepath.Join(r.packageDir, "node_modules", d.PackageName),
		filepath.Join(r.packageDir, "..", d.PackageName),
		filepath.Join(r.packageDir, "..", "..", "npm-packages", d.ShortName()),
	}
}
