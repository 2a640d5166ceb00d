package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-service/internal/auth/credentials"
	authhandler "task-service/internal/auth/handler"
	"task-service/internal/config"
	"task-service/internal/middleware"
	"task-service/internal/session"
	"task-service/internal/task"
	taskhandler "task-service/internal/task/handler"
)

func setupHTTP(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	credentialService := credentials.NewService(
		credentials.NewPostgresStore(infra.DB),
		cfg.BcryptCost,
	)

	sessionManager := session.NewManager(
		session.NewRedisStore(infra.Redis.Client),
		cfg.SessionDuration,
	)

	taskService := task.NewService(task.NewPostgresStore(infra.DB))

	authHandler := authhandler.NewHandler(credentialService, sessionManager)
	taskHandler := taskhandler.NewHandler(taskService)

	authMiddleware := middleware.NewAuthMiddleware(sessionManager)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging(log))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(middleware.GinRequireAuth(authMiddleware))

	authHandler.RegisterProtectedRoutes(protected)
	taskHandler.RegisterProtectedRoutes(protected)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
