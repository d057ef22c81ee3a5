package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/babuyoga/project-cost-dashboard/internal/auth"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "session_id"

const identityKey = "identity"

// SessionID extracts the bearer credential from the cookie, falling back to
// an Authorization: Bearer header for non-browser clients.
func SessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	const bearerTokenPrefix = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerTokenPrefix) {
		return strings.TrimPrefix(authHeader, bearerTokenPrefix)
	}
	return ""
}

// SessionRequired resolves the session through the guard and stores the
// identity in the request context for downstream handlers.
func SessionRequired(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := svc.Validate(c.Request.Context(), SessionID(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminRequired is the stricter guard for the admin console routes.
func AdminRequired(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := svc.ValidateAdmin(c.Request.Context(), SessionID(c))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the identity placed by a guard middleware.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func abortWithError(c *gin.Context, err error) {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		c.AbortWithStatusJSON(authErr.Status, gin.H{
			"error": authErr.Message,
			"code":  authErr.Code,
		})
		return
	}
	slog.Error("Session validation failed", "path", c.Request.URL.Path, "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  "INTERNAL_ERROR",
	})
}
