package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawad-inc/rawad/internal/infrastructure/config"
	"github.com/rawad-inc/rawad/internal/infrastructure/database"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		Long:  `Create or update the database tables for all persisted models.`,
		RunE:  run,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	err = database.Get().AutoMigrate(
		&models.UserModel{},
		&models.SupporterProfileModel{},
		&models.JobSeekerProfileModel{},
		&models.CompanyProfileModel{},
		&models.IndividualClientProfileModel{},
		&models.DonationModel{},
		&models.RatingModel{},
		&models.MobileNumberModel{},
		&models.SupportTicketModel{},
		&models.TicketCommentModel{},
		&models.LocationModel{},
		&models.WorkSpaceModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database schema migrated")
	return nil
}
