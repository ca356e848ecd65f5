package cmd

import (
	"github.com/spf13/cobra"
	"setup-hooks/internal/config"
	"setup-hooks/internal/gitrepo"
	"setup-hooks/internal/installer"
	"setup-hooks/internal/logger"
	"setup-hooks/internal/state"
)

// uninstallCmd reverses the bootstrap: it asks the manager to deregister its
// hooks, then removes the manager binary, but only when the state file says
// this tool installed it. Binaries the user installed themselves are left
// alone.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Deregister git hooks and remove the hook manager if we installed it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)
		st := state.Load(statePath)

		root, err := gitrepo.Root()
		if err != nil {
			logger.Error("[ERROR] Not inside a git repository: %v\n", err)
			return err
		}

		if mgrPath, found := installer.Detect(cfg.Manager.Name); found {
			if err := installer.DeregisterHooks(mgrPath, root); err != nil {
				logger.Error("[ERROR] Hook deregistration failed: %v\n", err)
				return err
			}
		} else {
			logger.Warn("[WARN] %s not found on PATH, nothing to deregister.\n", cfg.Manager.Name)
		}
		st.Hooks = nil

		// Only remove binaries recorded as installed by this tool.
		if ms, ok := st.Managers[cfg.Manager.Name]; ok && ms.InstalledBySetupHooks {
			if err := installer.RemoveManager(cfg.Manager.Name, ms.InstallPath); err != nil {
				logger.Error("[ERROR] Failed to remove %s: %v\n", cfg.Manager.Name, err)
				return err
			}
			delete(st.Managers, cfg.Manager.Name)
		} else {
			logger.Debug("[DEBUG] %s was not installed by setup-hooks, leaving binary in place\n", cfg.Manager.Name)
		}

		state.Save(statePath, st)
		logger.Info("[INFO] Git hooks removed.\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
