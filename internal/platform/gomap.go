package platform

// goOS and goArch translate Go runtime names into the package manager's
// vocabulary. Unknown values pass through unchanged so Resolve can report
// them.
var (
	goOS = map[string]string{
		"windows": "win32",
	}
	goArch = map[string]string{
		"amd64": "x64",
		"386":   "ia32",
	}
)

// FromGo converts a GOOS/GOARCH pair into an os/arch pair suitable for
// Resolve. Callers pass runtime.GOOS and runtime.GOARCH explicitly.
func FromGo(goos, goarch string) (osType, archType string) {
	osType, archType = goos, goarch
	if v, ok := goOS[goos]; ok {
		osType = v
	}
	if v, ok := goArch[goarch]; ok {
		archType = v
	}
	return osType, archType
}
