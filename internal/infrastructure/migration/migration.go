package migration

import (
	"fmt"

	"gorm.io/gorm"

	"tracker/internal/infrastructure/persistence/models"
	"tracker/internal/shared/logger"
)

// Models returns every model the schema is built from, in dependency
// order so association tables land after their referenced tables.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.IssueModel{},
		&models.CommentModel{},
		&models.LabelModel{},
		&models.IssueLabelModel{},
	}
}

// Migrate brings the schema up to date via gorm's AutoMigrate.
func Migrate(db *gorm.DB, log logger.Interface) error {
	log.Infow("running schema migration")

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Infow("schema migration completed")
	return nil
}
