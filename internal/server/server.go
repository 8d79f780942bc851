package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithjaspreet/og-backend/internal/config"
	"github.com/codewithjaspreet/og-backend/internal/gym"
	"github.com/codewithjaspreet/og-backend/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, gymHandler *gym.Handler, userHandler *user.Handler) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	router.POST("/add-gym", gymHandler.AddGym)
	router.POST("/add-gym-plans", gymHandler.AddGymPlans)
	router.POST("/add-user", userHandler.AddUser)
	router.GET("/members", userHandler.GetMemberListing)
	router.GET("/users/detail", userHandler.GetUserDetailing)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
		config: cfg,
	}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
