package gitrepo

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"setup-hooks/internal/logger"
)

// Root returns the absolute path of the enclosing repository's top-level
// directory, as reported by `git rev-parse --show-toplevel`. It fails when
// the current directory is not inside a work tree.
func Root() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --show-toplevel: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HooksDir returns the absolute path of the repository's hook directory.
// `git rev-parse --git-path hooks` honors core.hooksPath and worktree
// layouts, so we never hardcode .git/hooks.
func HooksDir() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--git-path", "hooks").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --git-path hooks: %w", err)
	}
	dir := strings.TrimSpace(string(out))

	// --git-path may answer relative to the current directory; resolve it so
	// callers can use the path regardless of where they chdir to.
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	logger.Debug("[DEBUG] Hooks directory: %s\n", abs)
	return abs, nil
}
