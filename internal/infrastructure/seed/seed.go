package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/user/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/auth"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/persistence/models"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/repository"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

const (
	// DefaultAdminEmail is the account created by the seed command. The
	// password must be changed after first login.
	DefaultAdminEmail    = "admin@quickdesk.com"
	DefaultAdminName     = "Administrator"
	DefaultAdminPassword = "admin123"
)

var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"Technical Support", "Technical issues and problems"},
	{"General Inquiry", "General questions and information"},
	{"Bug Report", "Software bugs and issues"},
	{"Feature Request", "New feature suggestions"},
	{"Account Issues", "Account-related problems"},
}

// Run creates the initial admin account and the default categories. It is
// idempotent: rerunning against a seeded database changes nothing.
func Run(ctx context.Context, db *gorm.DB, hasher *auth.BcryptPasswordHasher) error {
	if err := seedAdmin(ctx, db, hasher); err != nil {
		return err
	}
	return seedCategories(ctx, db)
}

func seedAdmin(ctx context.Context, db *gorm.DB, hasher *auth.BcryptPasswordHasher) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("role = ?", authorization.RoleAdmin.String()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		logger.Info("admin account already present, skipping seed")
		return nil
	}

	email, err := vo.NewEmail(DefaultAdminEmail)
	if err != nil {
		return err
	}

	admin, err := user.NewUser(email, DefaultAdminName, authorization.RoleAdmin)
	if err != nil {
		return err
	}

	hash, err := hasher.Hash(DefaultAdminPassword)
	if err != nil {
		return err
	}
	if err := admin.SetPasswordHash(hash); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("seeded admin account", "email", DefaultAdminEmail)
	return nil
}

func seedCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing categories: %w", err)
	}
	if count > 0 {
		logger.Info("categories already present, skipping seed")
		return nil
	}

	categoryRepo := repository.NewCategoryRepository(db)
	for _, c := range defaultCategories {
		cat, err := category.NewCategory(c.Name, c.Description)
		if err != nil {
			return err
		}
		if err := categoryRepo.Save(ctx, cat); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	logger.Info("seeded default categories", "count", len(defaultCategories))
	return nil
}
