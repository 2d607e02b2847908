package commands

import (
	"fmt"
	"os"

	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// configPath returns the file named by --config, or CONFIG_PATH when the flag is empty
func configPath(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("invalid config flag: %w", err)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path, nil
}

// loadConfig reads the configuration named by --config or CONFIG_PATH
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}
	return config.InitializeRestConfig(path)
}
