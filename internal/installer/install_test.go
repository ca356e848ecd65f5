package installer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"setup-hooks/internal/config"
)

func TestInstallManagerViaNpm(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	// Fake npm that "installs" the manager by dropping an executable into the
	// same bin directory.
	writeScript(t, bin, "npm",
		fmt.Sprintf("printf '#!/bin/sh\\nexit 0\\n' > %s/fakehook\nchmod 755 %s/fakehook\n", bin, bin))
	prependPath(t, bin)

	m := config.Manager{
		Name:       "fakehook",
		Version:    "1.0.0",
		Installers: []config.Installer{{Kind: "npm"}},
	}

	path, err := InstallManager(m)
	require.NoError(t, err)
	require.Equal(t, bin+"/fakehook", path)
}

func TestInstallManagerInstallerFailureAborts(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	writeScript(t, bin, "npm", "echo boom >&2\nexit 1\n")
	prependPath(t, bin)

	m := config.Manager{
		Name:       "fakehook",
		Installers: []config.Installer{{Kind: "npm"}},
	}

	// The npm strategy is viable (npm resolves) but fails, which must abort
	// the installation rather than fall through to another strategy.
	_, err := InstallManager(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestInstallManagerSucceededButBinaryMissing(t *testing.T) {
	skipOnWindows(t)
	bin := t.TempDir()
	// npm exits 0 but never produces the manager binary
	writeScript(t, bin, "npm", "exit 0\n")
	prependPath(t, bin)

	m := config.Manager{
		Name:       "fakehook",
		Installers: []config.Installer{{Kind: "npm"}},
	}

	_, err := InstallManager(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "still not on PATH")
}

func TestInstallManagerNoUsableInstaller(t *testing.T) {
	m := config.Manager{
		Name: "fakehook",
		Installers: []config.Installer{
			{Kind: "snap"}, // unknown kind, skipped
			{Kind: "go"},   // no module path, skipped
		},
	}

	_, err := InstallManager(m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no usable installer")
}

func TestSpecBuilders(t *testing.T) {
	m := config.Manager{Name: "lefthook", Version: "1.11.13"}

	require.Equal(t, "lefthook", packageName(m, config.Installer{}))
	require.Equal(t, "custom-pkg", packageName(m, config.Installer{Package: "custom-pkg"}))
	require.Equal(t, "lefthook@1.11.13", npmSpec(m, config.Installer{}))
	require.Equal(t, "github.com/evilmartians/lefthook@v1.11.13",
		goSpec(m, config.Installer{Module: "github.com/evilmartians/lefthook"}))

	unversioned := config.Manager{Name: "lefthook"}
	require.Equal(t, "lefthook", npmSpec(unversioned, config.Installer{}))
	require.Equal(t, "github.com/evilmartians/lefthook@latest",
		goSpec(unversioned, config.Installer{Module: "github.com/evilmartians/lefthook"}))
}
