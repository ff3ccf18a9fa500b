package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/quickdesk-io/quickdesk/internal/application/notification/subscribers"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/auth"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/config"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/database"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/email"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/migration"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/repository"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/seed"
	httpRouter "github.com/quickdesk-io/quickdesk/internal/interfaces/http"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
	skipSeed    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the QuickDesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding the default admin account and categories")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := migration.Run(database.Get()); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
		logger.Info("auto-migration completed")
	}

	if !skipSeed {
		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
		if err := seed.Run(cmd.Context(), database.Get(), hasher); err != nil {
			logger.Fatal("seeding failed", "error", err)
		}
	}

	dispatcher := events.NewInMemoryEventDispatcher(100)
	if err := dispatcher.Start(); err != nil {
		logger.Fatal("failed to start event dispatcher", "error", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			logger.Error("failed to stop event dispatcher", "error", err)
		}
	}()
	logger.Info("event dispatcher started")

	var sender email.Sender
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(&cfg.Email)
	} else {
		sender = email.NoopSender{}
		logger.Info("email delivery disabled, notifications stay in-app only")
	}

	notifier := subscribers.NewTicketNotifier(
		repository.NewNotificationRepository(database.Get()),
		repository.NewUserRepository(database.Get()),
		sender,
		logger.NewLogger(),
	)
	if err := notifier.Register(dispatcher); err != nil {
		logger.Fatal("failed to register ticket notifier", "error", err)
	}

	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router, err := httpRouter.NewRouter(database.Get(), redisClient, dispatcher, cfg, logger.NewLogger())
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// connectRedis returns nil when Redis is unreachable or unconfigured; the
// router falls back to a no-op rate limiter.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Host == "" {
		logger.Info("redis not configured, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, rate limiting disabled", "error", err)
		client.Close()
		return nil
	}

	logger.Info("connected to redis", "addr", cfg.Redis.GetAddr())
	return client
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
