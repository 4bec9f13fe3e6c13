package platform

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/ml0-1337/claude-gate-install/internal/core"
)

// Descriptor describes a supported os/arch pair and the platform package
// that carries its binary.
type Descriptor struct {
	OS          string
	Arch        string
	PackageName string
	IsWindows   bool
}

// packageTable maps os-arch keys to platform package names. win32-ia32 is
// served by the x64 build.
var packageTable = map[string]string{
	"darwin-x64":   core.PackageScope + "darwin-x64",
	"darwin-arm64": core.PackageScope + "darwin-arm64",
	"linux-x64":    core.PackageScope + "linux-x64",
	"linux-arm64":  core.PackageScope + "linux-arm64",
	"win32-x64":    core.PackageScope + "win32-x64",
	"win32-ia32":   core.PackageScope + "win32-x64",
}

// keyOrder fixes the order keys are reported in.
var keyOrder = []string{
	"darwin-x64",
	"darwin-arm64",
	"linux-x64",
	"linux-arm64",
	"win32-x64",
	"win32-ia32",
}

// UnsupportedPlatformError is returned by Resolve for pairs absent from the
// table.
type UnsupportedPlatformError struct {
	Key        string
	Supported  []string
	Suggestion string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("Unsupported platform: %s\nSupported platforms: %s",
		e.Key, strings.Join(e.Supported, ", "))
}

// Is reports the error as core.ErrUnsupportedPlatform.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == core.ErrUnsupportedPlatform
}

// Key builds the table key for an os/arch pair.
func Key(osType, archType string) string {
	return osType + "-" + archType
}

// Resolve maps an os/arch pair to its Descriptor. It performs no I/O and
// never inspects the running process.
func Resolve(osType, archType string) (*Descriptor, error) {
	key := Key(osType, archType)
	pkg, ok := packageTable[key]
	if !ok {
		return nil, &UnsupportedPlatformError{
			Key:        key,
			Supported:  SupportedKeys(),
			Suggestion: suggest(key),
		}
	}

	return &Descriptor{
		OS:          osType,
		Arch:        archType,
		PackageName: pkg,
		IsWindows:   osType == "win32",
	}, nil
}

// SupportedKeys returns every key in the table, in a stable order.
func SupportedKeys() []string {
	keys := make([]string, len(keyOrder))
	copy(keys, keyOrder)
	return keys
}

// Supported returns a Descriptor for every table entry.
func Supported() []Descriptor {
	out := make([]Descriptor, 0, len(keyOrder))
	for _, key := range keyOrder {
		osType, archType, _ := strings.Cut(key, "-")
		d, err := Resolve(osType, archType)
		if err != nil {
			continue
		}
		out = append(out, *d)
	}
	return out
}

// suggest returns the closest supported key by edit distance, or "" when
// nothing is within half the key's length.
func suggest(key string) string {
	best, bestDist := "", len(key)/2+1
	for _, candidate := range keyOrder {
		if d := fuzzy.LevenshteinDistance(key, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// Key returns the os-arch table key.
func (d *Descriptor) Key() string {
	return Key(d.OS, d.Arch)
}

// ShortName returns the package name without its scope.
func (d *Descriptor) ShortName() string {
	return strings.TrimPrefix(d.PackageName, core.PackageScope)
}

// BinaryName returns the executable filename inside a platform package.
func (d *Descriptor) BinaryName() string {
	if d.IsWindows {
		return "bin.exe"
	}
	return "bin"
}

// StagedBinaryName returns the name the binary is staged under.
func (d *Descriptor) StagedBinaryName() string {
	if d.IsWindows {
		return core.StagedBinaryWindows
	}
	return core.StagedBinaryUnix
}
