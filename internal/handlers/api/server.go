// Package api exposes the calculator as a JSON API
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
	"github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
)

// Server routes HTTP requests to the calculator service
type Server struct {
	engine  *gin.Engine
	service calculator.Service
	logger  *zap.Logger
}

// ServerConfig holds configuration for the server
type ServerConfig struct {
	Service        calculator.Service // Required
	AllowedOrigins []string           // Optional, every origin when empty or "*"
	Logger         *zap.Logger        // Optional
}

// NewServer creates the gin engine with every route registered
func NewServer(cfg *ServerConfig) *Server {
	if cfg == nil {
		panic("server config is required")
	}
	if cfg.Service == nil {
		panic("calculator service is required")
	}

	s := &Server{
		engine:  gin.New(),
		service: cfg.Service,
		logger:  logging.OrNop(cfg.Logger).Named("api"),
	}

	s.engine.Use(s.requestLogger(), s.recovery())
	s.engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	s.routes()

	return s
}

// Handler returns the http.Handler serving the API
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/v1")
	{
		v1.GET("/variants", s.listVariants)
		v1.GET("/variants/:variant/effects", s.getVariantEffects)
		v1.GET("/variants/:variant/help", s.getVariantHelp)
		v1.POST("/price", s.price)

		v1.GET("/sessions", s.listSessions)
		v1.POST("/sessions", s.createSession)
		v1.GET("/sessions/:id", s.getSession)
		v1.POST("/sessions/:id/actions", s.sessionAction)
		v1.DELETE("/sessions/:id", s.deleteSession)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("panic recovered in request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error: errorBody{Code: "internal", Message: "internal error"},
		})
	})
}
