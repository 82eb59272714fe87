package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "replydesk/internal/application/auth/usecases"
	autoreplyusecases "replydesk/internal/application/autoreply/usecases"
	clientusecases "replydesk/internal/application/client/usecases"
	configusecases "replydesk/internal/application/clientconfig/usecases"
	featureusecases "replydesk/internal/application/feature/usecases"
	messageusecases "replydesk/internal/application/message/usecases"
	planusecases "replydesk/internal/application/plan/usecases"
	"replydesk/internal/infrastructure/auth"
	"replydesk/internal/infrastructure/config"
	"replydesk/internal/infrastructure/ratelimit"
	"replydesk/internal/infrastructure/repository"
	"replydesk/internal/interfaces/http/handlers"
	"replydesk/internal/interfaces/http/middleware"
	"replydesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	authHandler         *handlers.AuthHandler
	featureHandler      *handlers.FeatureHandler
	planHandler         *handlers.PlanHandler
	clientHandler       *handlers.ClientHandler
	clientConfigHandler *handlers.ClientConfigHandler
	messageHandler      *handlers.MessageHandler
	autoReplyHandler    *handlers.AutoReplyHandler
	authMiddleware      *middleware.AuthMiddleware
	loginLimiter        ratelimit.RateLimiter
	logger              logger.Interface
}

func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	featureRepo := repository.NewFeatureRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	bindingRepo := repository.NewPlanFeatureRepository(db, log)
	clientRepo := repository.NewClientRepository(db, log)
	settingRepo := repository.NewClientSettingRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	messageRepo := repository.NewMessageRepository(db, log)
	ruleRepo := repository.NewAutoReplyRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	loginUC := authusecases.NewLoginUseCase(userRepo, clientRepo, hasher, jwtService, log)
	refreshUC := authusecases.NewRefreshTokenUseCase(jwtService, log)
	authHandler := handlers.NewAuthHandler(loginUC, refreshUC)

	featureHandler := handlers.NewFeatureHandler(
		featureusecases.NewCreateFeatureUseCase(featureRepo, log),
		featureusecases.NewUpdateFeatureUseCase(featureRepo, log),
		featureusecases.NewDeleteFeatureUseCase(featureRepo, bindingRepo, log),
		featureusecases.NewGetFeatureUseCase(featureRepo, log),
		featureusecases.NewListFeaturesUseCase(featureRepo, log),
	)

	planHandler := handlers.NewPlanHandler(
		planusecases.NewCreatePlanUseCase(planRepo, log),
		planusecases.NewUpdatePlanUseCase(planRepo, log),
		planusecases.NewDeletePlanUseCase(planRepo, bindingRepo, log),
		planusecases.NewGetPlanUseCase(planRepo, log),
		planusecases.NewListPlansUseCase(planRepo, log),
		planusecases.NewSetPlanFeatureUseCase(planRepo, featureRepo, bindingRepo, log),
		planusecases.NewListPlanFeaturesUseCase(planRepo, featureRepo, bindingRepo, log),
	)

	clientHandler := handlers.NewClientHandler(
		clientusecases.NewCreateClientUseCase(clientRepo, planRepo, userRepo, hasher, log),
		clientusecases.NewUpdateClientUseCase(clientRepo, planRepo, log),
		clientusecases.NewUpdateClientProfileUseCase(clientRepo, planRepo, log),
		clientusecases.NewDeleteClientUseCase(clientRepo, settingRepo, log),
		clientusecases.NewGetClientUseCase(clientRepo, planRepo, log),
		clientusecases.NewListClientsUseCase(clientRepo, planRepo, log),
	)

	clientConfigHandler := handlers.NewClientConfigHandler(
		configusecases.NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, log),
		configusecases.NewGetFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, log),
		configusecases.NewSaveFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, log),
	)

	messageHandler := handlers.NewMessageHandler(
		messageusecases.NewListMessagesUseCase(clientRepo, messageRepo, log),
	)

	autoReplyHandler := handlers.NewAutoReplyHandler(
		autoreplyusecases.NewCreateRuleUseCase(clientRepo, ruleRepo, log),
		autoreplyusecases.NewUpdateRuleUseCase(clientRepo, ruleRepo, log),
		autoreplyusecases.NewDeleteRuleUseCase(clientRepo, ruleRepo, log),
		autoreplyusecases.NewListRulesUseCase(clientRepo, ruleRepo, log),
	)

	var loginLimiter ratelimit.RateLimiter
	if redisClient != nil {
		loginLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine:              engine,
		cfg:                 cfg,
		authHandler:         authHandler,
		featureHandler:      featureHandler,
		planHandler:         planHandler,
		clientHandler:       clientHandler,
		clientConfigHandler: clientConfigHandler,
		messageHandler:      messageHandler,
		autoReplyHandler:    autoReplyHandler,
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
		loginLimiter:        loginLimiter,
		logger:              log,
	}
}

// SetupRoutes registers middleware and the full route tree.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		login := []gin.HandlerFunc{}
		if r.loginLimiter != nil {
			login = append(login, middleware.LoginRateLimit(r.loginLimiter, ratelimit.RateLimitConfig{
				RequestsPerMinute: 10,
				RequestsPerHour:   60,
				RequestsPerDay:    300,
			}, r.logger))
		}
		login = append(login, r.authHandler.Login)
		authGroup.POST("/login", login...)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	admin := api.Group("")
	admin.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin())
	{
		features := admin.Group("/features")
		{
			features.POST("", r.featureHandler.CreateFeature)
			features.GET("", r.featureHandler.ListFeatures)
			features.GET("/:id", r.featureHandler.GetFeature)
			features.PUT("/:id", r.featureHandler.UpdateFeature)
			features.DELETE("/:id", r.featureHandler.DeleteFeature)
		}

		plans := admin.Group("/plans")
		{
			plans.POST("", r.planHandler.CreatePlan)
			plans.GET("", r.planHandler.ListPlans)
			plans.GET("/:id", r.planHandler.GetPlan)
			plans.PUT("/:id", r.planHandler.UpdatePlan)
			plans.DELETE("/:id", r.planHandler.DeletePlan)
			plans.GET("/:id/features", r.planHandler.ListPlanFeatures)
			plans.PUT("/:id/features/:featureID", r.planHandler.EnableFeature)
			plans.DELETE("/:id/features/:featureID", r.planHandler.DisableFeature)
		}

		admin.POST("/clients", r.clientHandler.CreateClient)
		admin.GET("/clients", r.clientHandler.ListClients)
		admin.DELETE("/clients/:id", r.clientHandler.DeleteClient)
	}

	// Client-scoped routes: admins may access any client, client users
	// only their own.
	clients := api.Group("/clients/:id")
	clients.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireClientAccess("id"))
	{
		clients.GET("", r.clientHandler.GetClient)
		clients.PUT("", r.clientHandler.UpdateClient)

		clients.GET("/configuration", r.clientConfigHandler.GetConfiguration)
		clients.GET("/features/:featureID/settings", r.clientConfigHandler.GetFeatureSettings)
		clients.PUT("/features/:featureID/settings", r.clientConfigHandler.SaveFeatureSettings)

		clients.GET("/messages", r.messageHandler.ListMessages)

		clients.GET("/auto-replies", r.autoReplyHandler.ListRules)
		clients.POST("/auto-replies", r.autoReplyHandler.CreateRule)
		clients.PUT("/auto-replies/:ruleID", r.autoReplyHandler.UpdateRule)
		clients.DELETE("/auto-replies/:ruleID", r.autoReplyHandler.DeleteRule)
	}
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
