package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterHooksRunsManagerInstallInRepoRoot(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	repo := t.TempDir()
	// Fake manager records its subcommand into the working directory, which
	// must be the repository root.
	mgr := writeScript(t, bin, "fakehook", `echo "$1" > invoked.txt`+"\n")

	require.NoError(t, RegisterHooks(mgr, repo))

	got, err := os.ReadFile(filepath.Join(repo, "invoked.txt"))
	require.NoError(t, err)
	require.Equal(t, "install\n", string(got))
}

func TestRegisterHooksPropagatesFailure(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	mgr := writeScript(t, bin, "fakehook", "exit 3\n")

	err := RegisterHooks(mgr, t.TempDir())
	require.Error(t, err)
}

func TestDeregisterHooksRunsManagerUninstall(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	repo := t.TempDir()
	mgr := writeScript(t, bin, "fakehook", `echo "$1" > invoked.txt`+"\n")

	require.NoError(t, DeregisterHooks(mgr, repo))

	got, err := os.ReadFile(filepath.Join(repo, "invoked.txt"))
	require.NoError(t, err)
	require.Equal(t, "uninstall\n", string(got))
}

func TestHookRegistered(t *testing.T) {
	hooksDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte("#!/bin/sh\n"), 0755))

	require.True(t, HookRegistered(hooksDir, "pre-commit"))
	require.False(t, HookRegistered(hooksDir, "commit-msg"))
}
