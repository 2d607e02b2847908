// Package main is the entry point for the splashcamper-cli application.
// It registers the maintenance commands (schema migration, legacy import,
// wash-lane lookup, admin promotion) and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	"github.com/splashcamper/splashcamper-api/cmd/splashcamper-cli/internal/commands"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "splashcamper-cli",
		Short: "SplashCamper maintenance tool",
		Long: `splashcamper-cli runs maintenance tasks against the SplashCamper database
and the bundled legacy station data.

Database commands read the same configuration as the REST API. The file is taken
from --config, or CONFIG_PATH when the flag is not set, and environment variables
override its values.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML configuration file")

	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}
	if err := commands.InitWashLaneCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize wash lane commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
