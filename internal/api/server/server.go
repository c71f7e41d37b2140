package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "api-playground/docs" // Generated swagger docs
	"api-playground/internal/api/middleware"
	"api-playground/internal/api/v1/routes"
	"api-playground/internal/config"
)

// Server represents the API server
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	errCh      chan error
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	handlers *routes.Handlers,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	metrics := middleware.NewMetrics(registry)

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(metrics.Handler())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.RegisterRoutes(router, handlers)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
		errCh:      make(chan error, 1),
	}
}

// Start starts the API server in the background.
// Listen failures are delivered on Errors.
func (s *Server) Start() {
	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Failed to start server", zap.Error(err))
			s.errCh <- err
		}
	}()
}

// Errors reports a listener failure after Start
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
