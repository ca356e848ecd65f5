package config

import (
	"os"

	"gopkg.in/yaml.v3"
	"setup-hooks/internal/logger"
)

// Default returns the built-in configuration used when no hooks.yaml exists:
// lefthook, installed via npm or brew if available, otherwise from its GitHub
// releases. This keeps the common case a zero-config `setup-hooks install`.
func Default() Config {
	return Config{
		Manager: Manager{
			Name:    "lefthook",
			Version: "1.11.13",
			Installers: []Installer{
				{Kind: "npm"},
				{Kind: "brew"},
				{Kind: "github", Repo: "evilmartians/lefthook", Tag: "v1.11.13"},
			},
		},
		Hooks: []string{"pre-commit", "commit-msg"},
	}
}

// Load reads the hooks.yaml file at configFile and returns a populated Config.
// The file is optional: if it does not exist, the built-in defaults apply.
// A file that exists but cannot be parsed is a hard error (panic), matching
// the fail-fast behavior of the rest of the tool.
func Load(configFile string) Config {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] No config file at %s, using built-in defaults\n", configFile)
			return Default()
		}
		panic("Failed to read " + configFile + ": " + err.Error())
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("Failed to unmarshal " + configFile + ": " + err.Error())
	}

	// Fields omitted from the file keep their defaults, but a manager block
	// with no installers would make installation impossible; fall back to the
	// default strategies in that case.
	if len(cfg.Manager.Installers) == 0 {
		cfg.Manager.Installers = Default().Manager.Installers
	}

	logger.Debug("[DEBUG] Loaded config: manager=%s version=%s installers=%d hooks=%d\n",
		cfg.Manager.Name, cfg.Manager.Version, len(cfg.Manager.Installers), len(cfg.Hooks))
	return cfg
}
