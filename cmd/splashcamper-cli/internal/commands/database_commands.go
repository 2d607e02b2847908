package commands

import (
	"context"
	"fmt"

	"github.com/splashcamper/splashcamper-api/internal/app"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/legacy"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence"
	"github.com/splashcamper/splashcamper-api/internal/infrastructure/persistence/models"
	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DatabaseCommandHandler runs maintenance commands that need the database
type DatabaseCommandHandler struct {
	logger logger.Logger
}

// NewDatabaseCommandHandler creates a DatabaseCommandHandler with a console logger
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &DatabaseCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *DatabaseCommandHandler) open(cmd *cobra.Command) (*config.RestConfig, *gorm.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return cfg, db, nil
}

func (commandHandler *DatabaseCommandHandler) close(db *gorm.DB) {
	if err := persistence.CloseDB(db); err != nil {
		commandHandler.logger.Warn("failed to close database", "error", err)
	}
}

// MigrateCmd creates or updates the database schema
func (commandHandler *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	_, db, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer commandHandler.close(db)

	commandHandler.logger.Info("Database migrations completed successfully")
	return nil
}

// ImportLegacyCmd creates database stations for legacy records not imported yet
func (commandHandler *DatabaseCommandHandler) ImportLegacyCmd(cmd *cobra.Command, _ []string) error {
	cfg, db, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer commandHandler.close(db)

	store, err := legacy.NewStore(cfg.Legacy.FilePath)
	if err != nil {
		return fmt.Errorf("failed to load legacy stations: %w", err)
	}

	stationRepo, err := persistence.NewGormStationRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create station repository: %w", err)
	}

	created, err := app.ImportLegacy(context.Background(), stationRepo, store, commandHandler.logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d legacy stations\n", created, store.Len())
	return nil
}

// PromoteAdminCmd grants the admin role to an existing account
func (commandHandler *DatabaseCommandHandler) PromoteAdminCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}

	cfg, db, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer commandHandler.close(db)

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}

	userService, err := app.NewUserService(userRepo, &cfg.Auth, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	user, err := userService.PromoteByEmail(context.Background(), email)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Email, user.Role)
	return nil
}

// InitDatabaseCommands registers the database commands
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create database command handler: %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var importLegacyCmd = &cobra.Command{
		Use:   "import-legacy",
		Short: "Import legacy stations as active database stations",
		RunE:  handler.ImportLegacyCmd,
	}
	rootCmd.AddCommand(importLegacyCmd)

	var promoteAdminCmd = &cobra.Command{
		Use:   "promote-admin",
		Short: "Grant the admin role to a user",
		RunE:  handler.PromoteAdminCmd,
	}
	promoteAdminCmd.Flags().StringP("email", "", "", "Email of the account to promote")
	if err := promoteAdminCmd.MarkFlagRequired("email"); err != nil {
		return err
	}
	rootCmd.AddCommand(promoteAdminCmd)

	return nil
}
