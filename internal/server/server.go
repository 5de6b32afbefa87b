package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"planner/internal/auth"
	"planner/internal/config"
	"planner/internal/database"
	"planner/internal/handler"
	"planner/internal/metrics"
	"planner/internal/middleware"
	"planner/internal/repository"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger
}

// Init connects to the database, brings the schema up to date and builds the
// router.
func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	logger.Info("connected to database", zap.String("driver", cfg.DBDriver))

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	return &Server{
		Engine: NewRouter(db, cfg, logger, metrics.New()),
		DB:     db,
		Config: cfg,
		Logger: logger,
	}, nil
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	// Client IPs key the login rate limiter, so forwarded headers only count
	// when they come from a configured proxy.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, trusting none", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(m),
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Services
	guard := service.NewGuard(eventRepo)
	eventService := service.NewEventService(guard, eventRepo, taskRepo, attendeeRepo, noteRepo, logger)
	taskService := service.NewTaskService(guard, taskRepo)
	attendeeService := service.NewAttendeeService(guard, attendeeRepo)
	noteService := service.NewNoteService(guard, noteRepo)
	dashboardService := service.NewDashboardService(eventRepo)
	accountService := service.NewAccountService(userRepo, logger)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Handlers
	userHandler := handler.NewUserHandler(accountService, tokens, cfg.SessionCookieSecure, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)
	eventHandler := handler.NewEventHandler(eventService, logger)
	childHandler := handler.NewChildHandler(eventService, taskService, attendeeService, noteService, logger)
	statusHandler := handler.NewStatusHandler(eventService, taskService, m, logger)

	// Ops
	r.GET("/healthz", healthz(db))
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	limiter := middleware.RateLimit(middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst))
	r.GET("/register", userHandler.RegisterForm)
	r.POST("/register", limiter, userHandler.Register)
	r.GET("/login", userHandler.LoginForm)
	r.POST("/login", limiter, userHandler.Login)
	r.POST("/logout", userHandler.Logout)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		authorized.GET("/", dashboardHandler.Show)

		// Status endpoints answer every method so they can reply 405 themselves.
		authorized.Any("/update-status", statusHandler.UpdateEventStatus)
		authorized.Any("/update-task-status", statusHandler.UpdateTaskStatus)
		authorized.Any("/task/:task_id/update-status", statusHandler.UpdateTaskStatus)

		authorized.GET("/add-event", eventHandler.NewForm)
		authorized.POST("/add-event", eventHandler.Create)
		authorized.GET("/event/:id", eventHandler.Detail)
		authorized.POST("/event/:id/edit", eventHandler.Edit)
		authorized.POST("/event/:id/delete", eventHandler.Delete)

		authorized.GET("/event/:id/add-task", childHandler.TaskForm)
		authorized.POST("/event/:id/add-task", childHandler.AddTask)
		authorized.GET("/event/:id/add-attendee", childHandler.AttendeeForm)
		authorized.POST("/event/:id/add-attendee", childHandler.AddAttendee)
		authorized.POST("/event/:id/add-note", childHandler.AddNote)
	}

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         ":" + s.Config.ServerPort,
		Handler:      s.Engine,
		ReadTimeout:  s.Config.ReadTimeout,
		WriteTimeout: s.Config.WriteTimeout,
		IdleTimeout:  s.Config.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
	s.Logger.Info("server exited properly")
	return nil
}
