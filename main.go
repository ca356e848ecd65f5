package main

import (
	"setup-hooks/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The setup-hooks project bootstraps a commit-hook manager for the enclosing
// git repository:
//   - Probes the search path for the hook manager executable (lefthook by default)
//   - If the manager is missing, installs it via the first available package manager
//     (npm, brew, go install) or by downloading a GitHub release archive and
//     extracting the binary into a local bin directory
//   - Runs the manager's own `install` subcommand to register git hooks
//   - Maintains a small JSON state file recording what this tool itself installed,
//     so `uninstall` never removes binaries it does not own
//
// Error handling strategy:
//   - Fail-fast: the first failing step aborts the run and the process exits
//     with a non-zero status, so the success banner is only ever printed after
//     a fully successful bootstrap
//   - Shelled-out commands stream their own output, so the user sees the
//     underlying installer's error text directly
func main() {
	cmd.Execute()
}
