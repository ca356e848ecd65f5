package installer

import (
	"os/exec"
	"strings"

	"setup-hooks/internal/logger"
)

// Detect probes the search path for the named executable.
// It returns the resolved absolute path and true when found, or "" and false
// when the executable cannot be located. This is the presence check that
// decides whether the installer step runs at all.
func Detect(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("[DEBUG] %s not found on PATH: %v\n", name, err)
		return "", false
	}
	logger.Debug("[DEBUG] %s resolved to %s\n", name, path)
	return path, true
}

// ManagerVersion asks the manager binary for its version string.
// Lefthook (and most hook managers) support a `version` subcommand; if the
// call fails the version is reported as unknown rather than failing status.
func ManagerVersion(mgrPath string) string {
	out, err := exec.Command(mgrPath, "version").Output()
	if err != nil {
		logger.Debug("[DEBUG] %s version query failed: %v\n", mgrPath, err)
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
