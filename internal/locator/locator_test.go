package locator

import (
	"errors"
	"testing"

	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/platform"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bases = []string{
	"/pkg/claude-gate/node_modules/@claude-gate/linux-x64",
	"/pkg/@claude-gate/linux-x64",
	"/npm-packages/linux-x64",
}

func resolve(t *testing.T, osType, archType string) *platform.Descriptor {
	t.Helper()
	d, err := platform.Resolve(osType, archType)
	require.NoError(t, err)
	return d
}

func TestLocate_HighestPriorityWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, base := range bases {
		require.NoError(t, afero.WriteFile(fs, base+"/bin", []byte(base), 0755))
	}

	got, err := Locate(fs, resolve(t, "linux", "x64"), bases)
	require.NoError(t, err)
	assert.Equal(t, bases[0]+"/bin", got)
}

func TestLocate_FallsThroughInOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, bases[1]+"/bin", []byte("global"), 0755))
	require.NoError(t, afero.WriteFile(fs, bases[2]+"/bin", []byte("dev"), 0755))

	got, err := Locate(fs, resolve(t, "linux", "x64"), bases)
	require.NoError(t, err)
	assert.Equal(t, bases[1]+"/bin", got)

	require.NoError(t, fs.Remove(bases[1]+"/bin"))
	got, err = Locate(fs, resolve(t, "linux", "x64"), bases)
	require.NoError(t, err)
	assert.Equal(t, bases[2]+"/bin", got)
}

func TestLocate_WindowsExtension(t *testing.T) {
	fs := afero.NewMemMapFs()
	winBases := []string{"/a", "/b"}
	require.NoError(t, afero.WriteFile(fs, "/a/bin", []byte("unix"), 0755))
	require.NoError(t, afero.WriteFile(fs, "/b/bin.exe", []byte("win"), 0755))

	got, err := Locate(fs, resolve(t, "win32", "x64"), winBases)
	require.NoError(t, err)
	assert.Equal(t, "/b/bin.exe", got)
}

func TestLocate_IgnoresDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(bases[0]+"/bin", 0755))
	require.NoError(t, afero.WriteFile(fs, bases[2]+"/bin", []byte("dev"), 0755))

	got, err := Locate(fs, resolve(t, "linux", "x64"), bases)
	require.NoError(t, err)
	assert.Equal(t, bases[2]+"/bin", got)
}

func TestLocate_NotFound(t *testing.T) {
	fs := afero.NewMemMapFs()

	got, err := Locate(fs, resolve(t, "linux", "x64"), bases)
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, errors.Is(err, core.ErrBinaryNotFound))

	var nf *BinaryNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "@claude-gate/linux-x64", nf.PackageName)
	assert.Len(t, nf.Searched, len(bases))
	assert.Contains(t, err.Error(), "@claude-gate/linux-x64")
}

func TestLocate_NoBases(t *testing.T) {
	_, err := Locate(afero.NewMemMapFs(), resolve(t, "darwin", "arm64"), nil)
	assert.True(t, errors.Is(err, core.ErrBinaryNotFound))
}
