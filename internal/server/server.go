package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/xpyvent/xpyvent-api/internal/config"
	"github.com/xpyvent/xpyvent-api/internal/handlers"
	"github.com/xpyvent/xpyvent-api/internal/logger"
	"github.com/xpyvent/xpyvent-api/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	container  postgres.RepositoryContainer
}

// New creates a new server instance
func New(cfg *config.Config, container postgres.RepositoryContainer) *Server {
	return &Server{
		config:    cfg,
		container: container,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	router.Use(cors.New(corsConfig))

	userHandler := handlers.NewUserHandler(s.container)
	eventHandler := handlers.NewEventHandler(s.container.Events(), s.container.Media())
	mediaHandler := handlers.NewMediaHandler(s.container.Media(), s.config.Media.BaseURL)
	feedbackHandler := handlers.NewFeedbackHandler(s.container.Feedback())

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "xpyvent API is running",
			"status":  "healthy",
		})
	})

	RegisterRoutes(router, userHandler, eventHandler, mediaHandler, feedbackHandler)

	return router
}

// RegisterRoutes wires every endpoint to its operation handler
func RegisterRoutes(
	router *gin.Engine,
	userHandler *handlers.UserHandler,
	eventHandler *handlers.EventHandler,
	mediaHandler *handlers.MediaHandler,
	feedbackHandler *handlers.FeedbackHandler,
) {
	users := router.Group("/user")
	{
		users.POST("/create", userHandler.CreateUser)
		users.POST("/authenticate", userHandler.AuthenticateUser)
		users.GET("/profile/:userId", userHandler.GetUserProfile)
		users.PUT("/profile/update", userHandler.UpdateProfile)
	}

	events := router.Group("/event")
	{
		events.POST("/create", eventHandler.CreateEvent)
		events.GET("/list", eventHandler.ListEvents)
		events.GET("/details/:eventId", eventHandler.GetEventDetails)
		events.PUT("/update/:eventId", eventHandler.UpdateEvent)
		events.DELETE("/delete/:eventId", eventHandler.DeleteEvent)
	}

	mediaGroup := router.Group("/media")
	{
		mediaGroup.POST("/upload", mediaHandler.UploadMedia)
		mediaGroup.DELETE("/delete/:mediaId", mediaHandler.DeleteMedia)
	}

	router.POST("/feedback/submit", feedbackHandler.SubmitFeedback)
}
