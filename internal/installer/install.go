package installer

import (
	"fmt"
	"os/exec"
	"strings"

	"setup-hooks/internal/config"
	"setup-hooks/internal/logger"
)

// InstallManager installs the hook manager using the first strategy from the
// configured installer list that can run on this machine. A strategy whose
// own package-manager binary is not on the search path is skipped with a
// debug log; a strategy that runs but fails aborts the whole installation
// (fail-fast, no second guesses about a half-finished install).
//
// It returns the absolute path of the installed manager executable.
func InstallManager(m config.Manager) (string, error) {
	for _, inst := range m.Installers {
		switch inst.Kind {
		case "npm":
			if _, ok := Detect("npm"); !ok {
				logger.Debug("[DEBUG] npm not available, skipping npm installer\n")
				continue
			}
			logger.Info("[INFO] Installing %s via npm...\n", m.Name)
			if err := runInstallCommand("npm", "install", "-g", npmSpec(m, inst)); err != nil {
				return "", err
			}

		case "brew":
			if _, ok := Detect("brew"); !ok {
				logger.Debug("[DEBUG] brew not available, skipping brew installer\n")
				continue
			}
			logger.Info("[INFO] Installing %s via Homebrew...\n", m.Name)
			if err := runInstallCommand("brew", "install", packageName(m, inst)); err != nil {
				return "", err
			}

		case "go":
			if _, ok := Detect("go"); !ok {
				logger.Debug("[DEBUG] go toolchain not available, skipping go installer\n")
				continue
			}
			if inst.Module == "" {
				logger.Warn("[WARN] go installer for %s has no module path, skipping\n", m.Name)
				continue
			}
			logger.Info("[INFO] Installing %s via go install...\n", m.Name)
			if err := runInstallCommand("go", "install", goSpec(m, inst)); err != nil {
				return "", err
			}

		case "github":
			logger.Info("[INFO] Installing %s@%s from GitHub releases...\n", m.Name, m.Version)
			path, err := downloadFromGitHub(m, inst)
			if err != nil {
				return "", err
			}
			// The GitHub path places the binary itself, so no PATH re-probe
			// is needed; the destination directory may not even be on PATH.
			return path, nil

		default:
			logger.Warn("[WARN] Unknown installer kind %q for %s. Skipping.\n", inst.Kind, m.Name)
			continue
		}

		// A package manager ran successfully; the binary should now resolve.
		if path, ok := Detect(m.Name); ok {
			return path, nil
		}
		return "", fmt.Errorf("%s installer succeeded but %s still not on PATH", inst.Kind, m.Name)
	}

	return "", fmt.Errorf("no usable installer for %s (tried %d strategies)", m.Name, len(m.Installers))
}

// runInstallCommand executes a package-manager command, capturing combined
// output so a failure can show the underlying installer's own error text.
func runInstallCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", strings.Join(cmd.Args, " "), err, output)
	}
	logger.Debug("[DEBUG] Command output:\n%s\n", output)
	return nil
}

// packageName resolves the package-manager package name, defaulting to the
// manager's executable name.
func packageName(m config.Manager, inst config.Installer) string {
	if inst.Package != "" {
		return inst.Package
	}
	return m.Name
}

// npmSpec builds the npm package spec, pinning the configured version when
// one is set (e.g. lefthook@1.11.13).
func npmSpec(m config.Manager, inst config.Installer) string {
	spec := packageName(m, inst)
	if m.Version != "" {
		spec += "@" + m.Version
	}
	return spec
}

// goSpec builds the `go install` module spec, pinning the configured version
// when one is set and defaulting to latest otherwise.
func goSpec(m config.Manager, inst config.Installer) string {
	if m.Version != "" {
		return inst.Module + "@v" + strings.TrimPrefix(m.Version, "v")
	}
	return inst.Module + "@latest"
}
