package migration

import (
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema migration covers.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.CommentModel{},
	}
}

// Run applies GORM AutoMigrate for the given models.
func Run(db *gorm.DB, models ...interface{}) error {
	log := logger.WithComponent("migration")

	log.Info("starting database migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		log.Error("migration failed", "error", err)
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Info("database migration completed")
	return nil
}
