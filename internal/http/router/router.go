package router

import (
	"log"
	"strings"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/auth"
	"github.com/babuyoga/project-cost-dashboard/internal/config"
	"github.com/babuyoga/project-cost-dashboard/internal/http/handlers"
	"github.com/babuyoga/project-cost-dashboard/internal/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, svc *auth.Service) *gin.Engine {
	r := gin.New()
	r.Use(middleware.SlogLoggerMiddleware())
	r.Use(gin.Recovery())

	// the API sits behind a reverse proxy; trust only localhost
	err := r.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	if err != nil {
		log.Fatalf("Failed to set trusted proxies: %v", err)
	}

	allowedOrigins := strings.Split(cfg.AllowedOrigins, ",")
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	h := handlers.New(svc, cfg)

	api := r.Group("/api")
	api.GET("/ping", handlers.Ping)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)

	{
		protected := api.Group("")
		protected.Use(middleware.SessionRequired(svc))

		protected.GET("/auth/me", h.Me)
		protected.POST("/auth/change-password", h.ChangePassword)

		analytics := h.AnalyticsProxy()
		protected.GET("/projects/*path", analytics)
		protected.GET("/analysis/*path", analytics)
	}

	{
		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired(svc))

		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.POST("/users/:id/enable", h.EnableUser)
		admin.POST("/users/:id/disable", h.DisableUser)
		admin.PATCH("/users/:id/password", h.ResetUserPassword)
		admin.POST("/users/:id/invalidate-sessions", h.InvalidateUserSessions)

		admin.GET("/sessions", h.ListSessions)
		admin.DELETE("/sessions/:id", h.RevokeSession)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Not Found: " + c.Request.URL.Path})
	})

	return r
}
