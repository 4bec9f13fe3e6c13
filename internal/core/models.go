package core

// CommandName is the public command the wrappers expose.
const CommandName = "claude-gate"

// PackageScope prefixes every platform package name.
const PackageScope = "@claude-gate/"

// Staged artifact names. They are fixed so uninstall never has to scan.
const (
	StagedBinaryUnix    = CommandName + "-bin"
	StagedBinaryWindows = CommandName + ".exe"
	WrapperUnix         = CommandName
	WrapperBatch        = CommandName + ".cmd"
	WrapperPowerShell   = CommandName + ".ps1"
)

// StagingDirName is the directory, relative to the package root, that holds
// the staged artifact set.
const StagingDirName = "bin"

// AllArtifacts returns every file install may create, for every OS.
func AllArtifacts() []string {
	return []string{
		WrapperUnix,
		WrapperBatch,
		WrapperPowerShell,
		StagedBinaryWindows,
		StagedBinaryUnix,
	}
}

// Exit codes
const (
	ExitSuccess = 0
	ExitGeneral = 1
)
