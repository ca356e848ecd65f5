package config

// Manager describes the hook manager this tool bootstraps.
// - Name: the executable name probed on the search path (e.g. lefthook).
// - Version: version passed to installers that support pinning.
// - Installers: ordered list of installation strategies to try when the
//   executable is missing.
type Manager struct {
	Name       string      `yaml:"name"`
	Version    string      `yaml:"version"`
	Installers []Installer `yaml:"installers"`
}

// Installer is a single installation strategy for the manager.
// - Kind: "npm", "brew", "go" or "github".
// - Package: package name override for npm/brew (defaults to the manager name).
// - Module: Go module path, required for kind "go".
// - Repo/Tag: GitHub repository (owner/name) and release tag for kind "github".
type Installer struct {
	Kind    string `yaml:"kind"`
	Package string `yaml:"package"`
	Module  string `yaml:"module"`
	Repo    string `yaml:"repo"`
	Tag     string `yaml:"tag"`
}

// Config is the top-level structure returned after loading hooks.yaml.
// Hooks lists the git hook names the manager is expected to register;
// it is used by `status` to verify the hook directory.
type Config struct {
	Manager Manager  `yaml:"manager"`
	Hooks   []string `yaml:"hooks"`
}
