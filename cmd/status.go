package cmd

import (
	"github.com/spf13/cobra"
	"setup-hooks/internal/config"
	"setup-hooks/internal/gitrepo"
	"setup-hooks/internal/installer"
	"setup-hooks/internal/logger"
)

// statusCmd reports the current bootstrap state without changing anything:
// whether the manager resolves on PATH, its version, and which of the
// configured hooks are present in the repository's hook directory.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hook manager and registered hook status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(configPath)

		mgrPath, found := installer.Detect(cfg.Manager.Name)
		if found {
			version := installer.ManagerVersion(mgrPath)
			logger.Info("[INFO] %s found at %s (version: %s)\n", cfg.Manager.Name, mgrPath, version)
		} else {
			logger.Warn("[WARN] %s not found on PATH. Run `setup-hooks install`.\n", cfg.Manager.Name)
		}

		// Hook inspection requires a repository; outside one we still report
		// the manager status above, so this is not an error.
		hooksDir, err := gitrepo.HooksDir()
		if err != nil {
			logger.Warn("[WARN] Not inside a git repository, skipping hook inspection.\n")
			return nil
		}

		for _, hook := range cfg.Hooks {
			if installer.HookRegistered(hooksDir, hook) {
				logger.Info("[INFO] Hook registered: %s\n", hook)
			} else {
				logger.Warn("[WARN] Hook missing: %s\n", hook)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
