package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/quickdesk-io/quickdesk/internal/infrastructure/persistence/models"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

// Run applies the schema for all persistence models.
func Run(db *gorm.DB) error {
	targets := []any{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.VoteModel{},
		&models.NotificationModel{},
	}

	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database migrations applied", "tables", len(targets))
	return nil
}
