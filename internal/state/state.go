package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"
	"path/filepath"

	"setup-hooks/internal/logger"
)

// ManagerState represents the saved state of an installed hook manager.
// It records the installed version, the full install path of the executable,
// and a boolean indicating whether the binary was installed by this tool.
// Only binaries we installed ourselves are ever removed on uninstall.
type ManagerState struct {
	Version               string `json:"version"`                  // Version string of the installed manager
	InstallPath           string `json:"install_path"`             // Absolute path of the installed executable
	InstalledBySetupHooks bool   `json:"installed_by_setup_hooks"` // True if installed by this tool, false if external/manual install
}

// State holds the entire saved state for the bootstrap tool.
// Managers maps manager name to its ManagerState; Hooks lists the hook names
// registered on the last successful install.
type State struct {
	Managers map[string]ManagerState `json:"managers"`
	Hooks    []string                `json:"hooks"`
}

// Load loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty State.
// It ensures the Managers map is non-nil to prevent nil map writes.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		// File missing or unreadable: start from an empty initialized state
		return &State{Managers: make(map[string]ManagerState)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	// Defensive: ensure the map is initialized if JSON contained null
	if st.Managers == nil {
		st.Managers = make(map[string]ManagerState)
	}
	return &st
}

// Save writes the given State struct to a JSON file at the given path,
// creating parent directories as needed. The JSON is pretty-printed with
// indentation for readability. Errors during marshalling or writing are
// logged but not propagated: losing state is an inconvenience, not a reason
// to fail an otherwise successful bootstrap.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("[ERROR] Failed to create state directory %s: %v\n", dir, err)
			return
		}
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
