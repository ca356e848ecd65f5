package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"setup-hooks/internal/logger"
)

// RegisterHooks runs the manager's own `install` subcommand from the
// repository root, which writes the hook scripts into the repository's hook
// directory. The manager's output is streamed straight through so the user
// sees exactly what it did (or why it failed).
func RegisterHooks(mgrPath, repoRoot string) error {
	cmd := exec.Command(mgrPath, "install")
	cmd.Dir = repoRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	logger.Debug("[DEBUG] Running command: %s (in %s)\n", strings.Join(cmd.Args, " "), repoRoot)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s install: %w", filepath.Base(mgrPath), err)
	}
	return nil
}

// DeregisterHooks runs the manager's `uninstall` subcommand from the
// repository root, removing the hook scripts it previously installed.
func DeregisterHooks(mgrPath, repoRoot string) error {
	cmd := exec.Command(mgrPath, "uninstall")
	cmd.Dir = repoRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	logger.Debug("[DEBUG] Running command: %s (in %s)\n", strings.Join(cmd.Args, " "), repoRoot)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s uninstall: %w", filepath.Base(mgrPath), err)
	}
	return nil
}

// HookRegistered reports whether a hook script with the given name exists in
// the hook directory. Used by `status` to verify what the manager registered.
func HookRegistered(hooksDir, hook string) bool {
	info, err := os.Stat(filepath.Join(hooksDir, hook))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
