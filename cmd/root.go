package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"setup-hooks/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `setup-hooks`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:           "setup-hooks",                     // The name of the CLI tool
	Short:         "Git hook manager bootstrap tool", // Short description shown in help output
	SilenceUsage:  true,                              // A failed step is not a usage error
	SilenceErrors: true,                              // Commands log their own errors before returning them

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},
}

// Execute initializes flags, registers subcommands, and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Any command returning an error means a step failed; exit non-zero so
	// callers (CI, other scripts) see the failure.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
