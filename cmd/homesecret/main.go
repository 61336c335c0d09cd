package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/systmms/homesecret/cmd/homesecret/commands"
	"github.com/systmms/homesecret/internal/config"
	"github.com/systmms/homesecret/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Global flags
	var (
		secretsFile    string
		noColor        bool
		debug          bool
		nonInteractive bool
	)

	// Create config placeholder
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "homesecret",
		Short: "Local secrets accessor for ${HOME}/home_secret.toml",
		Long: `homesecret reads a single TOML file of nested key-value secrets and gives
typed lookup by dotted path, masked listing with faceted search, and code
generation of named accessors.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger with parsed flags
			logger := logging.New(debug, noColor)

			// Update config with parsed values
			cfg.File = secretsFile
			cfg.Logger = logger
			cfg.NonInteractive = nonInteractive
		},
	}

	rootCmd.PersistentFlags().StringVar(&secretsFile, "file", "", "Secrets file path (default $HOME/home_secret.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Non-interactive mode")

	// Add commands
	rootCmd.AddCommand(
		commands.NewGetCommand(cfg),
		commands.NewListCommand(cfg),
		commands.NewGenCommand(cfg),
		commands.NewDoctorCommand(cfg),
		commands.NewCompletionCommand(cfg),
	)

	return rootCmd.Execute()
}
