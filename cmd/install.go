package cmd

import (
	"github.com/spf13/cobra"
	"setup-hooks/internal/config"
	"setup-hooks/internal/gitrepo"
	"setup-hooks/internal/installer"
	"setup-hooks/internal/logger"
	"setup-hooks/internal/state"
)

// configPath holds the path to the configuration YAML file.
// It's passed via the `--config` or `-c` flag. The file is optional; when it
// does not exist, built-in defaults (lefthook via npm/brew/github) apply.
var configPath string

// statePath is the path to the persistent state file.
// This file tracks which binaries were installed by this tool.
var statePath string

// installCmd runs the full bootstrap sequence:
// probe -> install manager if missing -> register hooks -> success banner.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the hook manager if missing and register git hooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)
		st := state.Load(statePath)

		// Everything operates relative to the enclosing repository.
		root, err := gitrepo.Root()
		if err != nil {
			logger.Error("[ERROR] Not inside a git repository: %v\n", err)
			return err
		}
		logger.Debug("[DEBUG] Repository root: %s\n", root)

		// Probe the search path first. If the manager is already resolvable,
		// the installer step is skipped entirely (idempotent re-runs).
		mgrPath, found := installer.Detect(cfg.Manager.Name)
		if found {
			logger.Info("[INFO] %s already installed at %s. Skipping installation.\n", cfg.Manager.Name, mgrPath)
		} else {
			logger.Warn("[WARN] %s not found on PATH. Installing...\n", cfg.Manager.Name)
			mgrPath, err = installer.InstallManager(cfg.Manager)
			if err != nil {
				logger.Error("[ERROR] Failed to install %s: %v\n", cfg.Manager.Name, err)
				return err
			}
			// Record that we installed this binary so uninstall knows it may
			// remove it later.
			st.Managers[cfg.Manager.Name] = state.ManagerState{
				Version:               cfg.Manager.Version,
				InstallPath:           mgrPath,
				InstalledBySetupHooks: true,
			}
		}

		// Hook registration is always attempted once the presence check
		// resolves, whether or not an installation occurred.
		if err := installer.RegisterHooks(mgrPath, root); err != nil {
			logger.Error("[ERROR] Hook registration failed: %v\n", err)
			return err
		}
		st.Hooks = cfg.Hooks

		state.Save(statePath, st)

		logger.Info("[INFO] Git hooks installed successfully.\n")
		logger.Info("[INFO] %s will now run on every commit.\n", cfg.Manager.Name)
		return nil
	},
}

// init sets up CLI flags and registers the command with the root command.
// The config/state flags live on the root command so that install, status and
// uninstall all share them.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "hooks.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", ".setup-hooks/state.json", "Path to state file")
	rootCmd.AddCommand(installCmd)
}
