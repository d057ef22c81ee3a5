package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/babuyoga/project-cost-dashboard/internal/auth"
	"github.com/babuyoga/project-cost-dashboard/internal/config"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *auth.Service
	cfg *config.Config
}

func New(svc *auth.Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// respondError maps taxonomy errors to their status/code pair. Anything else
// is a store or hashing failure: log the detail, answer with an opaque 500.
func respondError(c *gin.Context, err error) {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		c.JSON(authErr.Status, gin.H{
			"error": authErr.Message,
			"code":  authErr.Code,
		})
		return
	}
	slog.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  "INTERNAL_ERROR",
	})
}
