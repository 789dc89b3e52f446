package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskd/internal/infrastructure/config"
	"deskd/internal/infrastructure/database"
	"deskd/internal/infrastructure/migration"
	"deskd/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  `Bring the database schema up to date for the configured backend.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return err
	}

	fmt.Println("migration completed")
	return nil
}
