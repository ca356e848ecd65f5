package installer

import (
	"fmt"
	"os"
	"strings"

	"setup-hooks/internal/logger"
)

// RemoveManager removes a manager binary that this tool installed earlier.
// The removal strategy is inferred from the install path the same way it was
// chosen at install time: Homebrew cellar paths go through `brew uninstall`,
// npm global paths through `npm uninstall -g`, anything else (our own GitHub
// release installs) is a direct file removal.
func RemoveManager(name, installPath string) error {
	logger.Info("[INFO] Removing %s...\n", name)

	// Homebrew-managed install
	if strings.HasPrefix(installPath, "/opt/homebrew/") || strings.Contains(installPath, "/Cellar/") {
		logger.Debug("[DEBUG] Detected Homebrew install, uninstalling with brew\n")
		return runInstallCommand("brew", "uninstall", name)
	}

	// npm global install: the resolved path is a symlink into the global
	// node_modules tree
	if strings.Contains(installPath, "node_modules") || isNpmGlobal(installPath) {
		logger.Debug("[DEBUG] Detected npm global install, uninstalling with npm\n")
		return runInstallCommand("npm", "uninstall", "-g", name)
	}

	// Direct binary placed by the GitHub release installer
	if err := os.Remove(installPath); err != nil {
		return fmt.Errorf("failed to remove %s: %w", installPath, err)
	}
	logger.Debug("[DEBUG] Removed binary %s\n", installPath)
	return nil
}

// isNpmGlobal reports whether path points into npm's global bin directory.
// The target of the symlink lives under node_modules, so this catches the
// common case where the resolved PATH entry is the symlink itself.
func isNpmGlobal(path string) bool {
	resolved, err := os.Readlink(path)
	if err != nil {
		return false
	}
	return strings.Contains(resolved, "node_modules")
}
