package security

import (
	"fmt"
	"strings"
)

// maxPathLen bounds any path written into a wrapper script.
const maxPathLen = 4096

// ValidatePath performs general path validation
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes: %q", path)
	}

	if len(path) > maxPathLen {
		return fmt.Errorf("path too long: %d characters", len(path))
	}

	return nil
}

// ValidateScriptPath checks that path can be embedded in a double-quoted
// argument of a generated shim. sh expands $, ` and \ inside double quotes
// and cmd.exe expands % even inside quotes, so those are rejected for the
// respective target.
func ValidateScriptPath(path string, windows bool) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	forbidden := []string{`"`, "\n", "\r"}
	if windows {
		forbidden = append(forbidden, "%")
	} else {
		forbidden = append(forbidden, "$", "`", `\`)
	}

	for _, s := range forbidden {
		if strings.Contains(path, s) {
			return fmt.Errorf("path contains %q and cannot be quoted into a wrapper script: %s", s, path)
		}
	}

	return nil
}
