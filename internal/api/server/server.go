package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/JesusPQ15/Transcription-page/docs" // Generated swagger docs
	"github.com/JesusPQ15/Transcription-page/internal/api/middleware"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/handlers"
	v1routes "github.com/JesusPQ15/Transcription-page/internal/api/v1/routes"
	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
	"github.com/JesusPQ15/Transcription-page/internal/web"
)

// Server represents the API server
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// Options carries what the router needs besides the services
type Options struct {
	Environment string
	EngineName  string
	Metrics     *middleware.Metrics
	Gatherer    prometheus.Gatherer
}

// NewServer creates a new API server
func NewServer(cfg config.ServerConfig, opts Options, container *v1routes.ServiceContainer, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger)

	if opts.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Handler())
	}

	router.GET("/health", handlers.Health(opts.EngineName))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	page := gin.WrapH(web.NewHandler())
	router.GET("/", page)
	router.HEAD("/", page)
	router.GET("/index.html", page)
	router.GET("/static/*filepath", page)

	v1routes.RegisterTranscribe(router, container, cfg.MaxUploadBytes())

	v1 := router.Group("/api/v1")
	v1routes.RegisterRoutes(v1, container)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
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
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.Int64("max_upload_mb", s.config.MaxUploadMB),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
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

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
