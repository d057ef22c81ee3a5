package handlers

import (
	"net/http"
	"time"

	"github.com/babuyoga/project-cost-dashboard/internal/auth"
	"github.com/babuyoga/project-cost-dashboard/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

func (h *Handler) setSessionCookie(c *gin.Context, sessionID string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// Login verifies credentials and hands the fresh session id to the client as
// an HTTP-only cookie expiring with the server-side row.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.Validation("Invalid request body"))
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, result.ExpiresAt)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
	})
}

// Logout never fails observably: the session row is removed if present and
// the client is told to discard the cookie either way.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me reports the identity resolved by the guard middleware.
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, auth.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, auth.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.Validation("Invalid request body"))
		return
	}

	err := h.svc.ChangePassword(
		c.Request.Context(),
		identity.UserID,
		req.CurrentPassword,
		req.NewPassword,
		req.ConfirmPassword,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
