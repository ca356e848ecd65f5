package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"setup-hooks/internal/logger"
	"setup-hooks/internal/state"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// bootstrapEnv prepares a full install-command environment: a fresh git
// repository as the working directory, a bin directory prepended to PATH for
// fake executables, and config/state paths pointing into the repo.
func bootstrapEnv(t *testing.T) (bin, repo string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake shell executables require a unix shell")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	bin = t.TempDir()
	repo = t.TempDir()
	require.NoError(t, exec.Command("git", "init", repo).Run())
	chdir(t, repo)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := `
manager:
  name: fakehook
  version: 1.0.0
  installers:
    - kind: npm
hooks:
  - pre-commit
`
	require.NoError(t, os.WriteFile(filepath.Join(repo, "hooks.yaml"), []byte(cfg), 0644))

	oldConfig, oldState := configPath, statePath
	configPath = filepath.Join(repo, "hooks.yaml")
	statePath = filepath.Join(repo, ".setup-hooks", "state.json")
	t.Cleanup(func() { configPath, statePath = oldConfig, oldState })
	return bin, repo
}

// fakeScript drops an executable shell script named name into dir.
func fakeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body), 0755))
}

// captureInfo swaps logger.Info for a recorder so tests can assert exactly
// which informational lines a command emitted.
func captureInfo(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	old := logger.Info
	logger.Info = func(format string, a ...any) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}
	t.Cleanup(func() { logger.Info = old })
	return &lines
}

func TestInstallSkipsInstallerWhenManagerPresent(t *testing.T) {
	bin, _ := bootstrapEnv(t)

	// Manager already resolvable on PATH, recording each subcommand it is
	// asked to run.
	mgrMarker := filepath.Join(bin, "mgr-invocations.txt")
	fakeScript(t, bin, "fakehook", fmt.Sprintf(`echo "$1" >> %s`+"\n", mgrMarker))
	// npm would leave a marker if the install command ever invoked it
	npmMarker := filepath.Join(bin, "npm-invoked.txt")
	fakeScript(t, bin, "npm", fmt.Sprintf("touch %s\n", npmMarker))

	lines := captureInfo(t)
	require.NoError(t, installCmd.RunE(installCmd, nil))

	// The presence check resolved, so the installer must never run
	_, err := os.Stat(npmMarker)
	require.True(t, os.IsNotExist(err))

	// Hook registration is still attempted after the presence check
	got, err := os.ReadFile(mgrMarker)
	require.NoError(t, err)
	require.Equal(t, "install\n", string(got))

	// Full success ends with exactly the two informational banner lines
	require.GreaterOrEqual(t, len(*lines), 2)
	require.Equal(t, "[INFO] Git hooks installed successfully.\n", (*lines)[len(*lines)-2])
	require.Equal(t, "[INFO] fakehook will now run on every commit.\n", (*lines)[len(*lines)-1])
}

func TestInstallRunsInstallerWhenManagerMissing(t *testing.T) {
	bin, _ := bootstrapEnv(t)

	// No fakehook on PATH; the fake npm "installs" one that accepts any
	// subcommand.
	fakeScript(t, bin, "npm",
		fmt.Sprintf("printf '#!/bin/sh\\nexit 0\\n' > %s/fakehook\nchmod 755 %s/fakehook\n", bin, bin))

	lines := captureInfo(t)
	require.NoError(t, installCmd.RunE(installCmd, nil))

	// The install is recorded as ours in the state file
	st := state.Load(statePath)
	require.True(t, st.Managers["fakehook"].InstalledBySetupHooks)
	require.Equal(t, "1.0.0", st.Managers["fakehook"].Version)

	require.GreaterOrEqual(t, len(*lines), 2)
	require.Equal(t, "[INFO] Git hooks installed successfully.\n", (*lines)[len(*lines)-2])
}

func TestInstallFailurePrintsNoBanner(t *testing.T) {
	bin, _ := bootstrapEnv(t)

	// Manager present but its install subcommand fails
	fakeScript(t, bin, "fakehook", "exit 1\n")

	lines := captureInfo(t)
	err := installCmd.RunE(installCmd, nil)
	require.Error(t, err)

	for _, line := range *lines {
		require.NotContains(t, line, "Git hooks installed successfully")
	}
}

func TestInstallFailingInstallerAborts(t *testing.T) {
	bin, _ := bootstrapEnv(t)

	// Manager absent and the only installer fails: registration must never
	// be reached and no banner printed.
	fakeScript(t, bin, "npm", "exit 1\n")

	lines := captureInfo(t)
	err := installCmd.RunE(installCmd, nil)
	require.Error(t, err)

	for _, line := range *lines {
		require.NotContains(t, line, "Git hooks installed successfully")
	}
}
