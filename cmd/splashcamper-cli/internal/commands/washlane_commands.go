package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/app"
	"github.com/splashcamper/splashcamper-api/internal/domain/washlanes"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/legacy"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// WashLaneCommandHandler resolves wash lanes without a database
type WashLaneCommandHandler struct {
	logger logger.Logger
}

// NewWashLaneCommandHandler creates a WashLaneCommandHandler with a console logger
func NewWashLaneCommandHandler() (*WashLaneCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &WashLaneCommandHandler{logger: loggerInstance}, nil
}

type washLaneOutput struct {
	StationID string               `json:"stationId"`
	Source    string               `json:"source"`
	Lanes     []washLaneOutputLane `json:"lanes"`
}

type washLaneOutputLane struct {
	LaneNumber      int  `json:"laneNumber"`
	HasHighPressure bool `json:"hasHighPressure"`
	HasPortique     bool `json:"hasPortique"`
	HasTallPortique bool `json:"hasTallPortique"`
}

// WashLanesCmd prints the resolved lanes of a legacy station as JSON
func (commandHandler *WashLaneCommandHandler) WashLanesCmd(cmd *cobra.Command, _ []string) error {
	stationID, err := cmd.Flags().GetString("id")
	if err != nil {
		return fmt.Errorf("invalid id flag: %w", err)
	}
	legacyFile, err := cmd.Flags().GetString("legacy-file")
	if err != nil {
		return fmt.Errorf("invalid legacy-file flag: %w", err)
	}

	settings, err := legacySettings(cmd)
	if err != nil {
		return err
	}
	if legacyFile != "" {
		settings.FilePath = legacyFile
	}

	store, err := legacy.NewStore(settings.FilePath)
	if err != nil {
		return fmt.Errorf("failed to load legacy stations: %w", err)
	}

	resolver := washlanes.NewResolver(nil, settings.Keywords())
	service, err := app.NewWashLaneService(nil, store, resolver, commandHandler.logger)
	if err != nil {
		return err
	}

	res, err := service.Resolve(context.Background(), stationID)
	if err != nil {
		return err
	}

	out := washLaneOutput{StationID: res.StationID, Source: res.Source, Lanes: []washLaneOutputLane{}}
	for _, lane := range res.Lanes {
		out.Lanes = append(out.Lanes, washLaneOutputLane(lane))
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// legacySettings returns the legacy section of the configuration file when one is given,
// so the command resolves lanes the same way the REST API does.
func legacySettings(cmd *cobra.Command) (config.LegacySettings, error) {
	path, err := configPath(cmd)
	if err != nil {
		return config.LegacySettings{}, err
	}
	if path == "" {
		return config.LegacySettings{}, nil
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return config.LegacySettings{}, err
	}
	return cfg.Legacy, nil
}

// InitWashLaneCommands registers the wash-lanes command
func InitWashLaneCommands(rootCmd *cobra.Command) error {
	handler, err := NewWashLaneCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create wash lane command handler: %w", err)
	}

	var washLanesCmd = &cobra.Command{
		Use:   "wash-lanes",
		Short: "Resolve the wash lanes of a legacy station",
		RunE:  handler.WashLanesCmd,
	}
	washLanesCmd.Flags().StringP("id", "", "", "Legacy station id, e.g. station_17")
	washLanesCmd.Flags().StringP("legacy-file", "", "", "Legacy stations JSON file (overrides legacy.file_path, embedded copy when both are empty)")
	if err := washLanesCmd.MarkFlagRequired("id"); err != nil {
		return err
	}
	rootCmd.AddCommand(washLanesCmd)

	return nil
}
