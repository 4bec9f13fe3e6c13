package core

import "errors"

// Error taxonomy shared across packages. Concrete error types carry the
// details and report these sentinels through errors.Is.
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrBinaryNotFound      = errors.New("platform binary not found")
	ErrFilesystem          = errors.New("filesystem failure")
)
