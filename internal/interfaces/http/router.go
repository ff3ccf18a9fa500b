package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	categoryusecases "github.com/quickdesk-io/quickdesk/internal/application/category/usecases"
	notificationusecases "github.com/quickdesk-io/quickdesk/internal/application/notification/usecases"
	ticketusecases "github.com/quickdesk-io/quickdesk/internal/application/ticket/usecases"
	userusecases "github.com/quickdesk-io/quickdesk/internal/application/user/usecases"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/auth"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/config"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/ratelimit"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/repository"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/storage"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers"
	tickethandlers "github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers/ticket"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/middleware"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/routes"
	"github.com/quickdesk-io/quickdesk/internal/shared/db"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
	"github.com/quickdesk-io/quickdesk/internal/shared/services/markdown"
)

// Router wires repositories, use cases, handlers and middleware into a
// gin engine.
type Router struct {
	engine              *gin.Engine
	authHandler         *handlers.AuthHandler
	ticketHandler       *tickethandlers.TicketHandler
	categoryHandler     *handlers.CategoryHandler
	userHandler         *handlers.UserHandler
	notificationHandler *handlers.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	loginRateLimit      *middleware.RateLimit
	cfg                 *config.Config
	logger              logger.Interface
}

// NewRouter builds the full dependency graph. redisClient may be nil, in
// which case rate limiting is disabled.
func NewRouter(
	database *gorm.DB,
	redisClient *redis.Client,
	dispatcher events.EventDispatcher,
	cfg *config.Config,
	log logger.Interface,
) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	voteRepo := repository.NewVoteRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)

	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	fileStore, err := storage.NewLocalFileStore(cfg.Storage.UploadDir)
	if err != nil {
		return nil, err
	}

	renderer := markdown.NewRenderer()

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, dispatcher, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	profileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, dispatcher, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, dispatcher, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, categoryRepo, dispatcher, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, renderer, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, dispatcher, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, dispatcher, log)
	castVoteUC := ticketusecases.NewCastVoteUseCase(ticketRepo, voteRepo, txManager, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	attachFileUC := ticketusecases.NewAttachFileUseCase(ticketRepo, attachmentRepo, fileStore, log)
	dashboardUC := ticketusecases.NewGetDashboardUseCase(ticketRepo, log)

	createCategoryUC := categoryusecases.NewCreateCategoryUseCase(categoryRepo, log)
	updateCategoryUC := categoryusecases.NewUpdateCategoryUseCase(categoryRepo, log)
	listCategoriesUC := categoryusecases.NewListCategoriesUseCase(categoryRepo, log)
	deleteCategoryUC := categoryusecases.NewDeleteCategoryUseCase(categoryRepo, ticketRepo, log)

	listNotificationsUC := notificationusecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationusecases.NewMarkNotificationReadUseCase(notificationRepo, log)
	markAllReadUC := notificationusecases.NewMarkAllNotificationsReadUseCase(notificationRepo, log)
	unreadCountUC := notificationusecases.NewUnreadCountUseCase(notificationRepo, log)

	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, profileUC,
		jwtService, cfg.Auth.Cookie, cfg.Auth.JWT, log,
	)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, changeStatusUC, assignTicketUC,
		addCommentUC, castVoteUC, deleteTicketUC, attachFileUC, dashboardUC,
		fileStore, log,
	)
	categoryHandler := handlers.NewCategoryHandler(createCategoryUC, updateCategoryUC, listCategoriesUC, deleteCategoryUC, log)
	userHandler := handlers.NewUserHandler(listUsersUC, createUserUC, updateUserUC, deleteUserUC, log)
	notificationHandler := handlers.NewNotificationHandler(listNotificationsUC, markReadUC, markAllReadUC, unreadCountUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NoopRateLimiter{}
	}
	loginRateLimit := middleware.NewRateLimit(
		limiter, "login",
		cfg.RateLimit.LoginLimit, time.Duration(cfg.RateLimit.LoginWindow)*time.Second,
		log,
	)

	return &Router{
		engine:              engine,
		authHandler:         authHandler,
		ticketHandler:       ticketHandler,
		categoryHandler:     categoryHandler,
		userHandler:         userHandler,
		notificationHandler: notificationHandler,
		authMiddleware:      authMiddleware,
		loginRateLimit:      loginRateLimit,
		cfg:                 cfg,
		logger:              log,
	}, nil
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginRateLimit: r.loginRateLimit,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on addr.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
