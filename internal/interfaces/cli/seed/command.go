package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickdesk-io/quickdesk/internal/infrastructure/auth"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/config"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/database"
	seeddata "github.com/quickdesk-io/quickdesk/internal/infrastructure/seed"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed default data",
		Long:  `Create the default admin account and ticket categories. Safe to run repeatedly; existing records are left untouched.`,
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

	log := logger.NewLogger()
	log.Infow("seeding default data", "environment", env)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := seeddata.Run(cmd.Context(), database.Get(), hasher); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed successfully")
	return nil
}
