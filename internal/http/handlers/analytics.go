package handlers

import (
	"log"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
)

// AnalyticsProxy forwards guarded requests to the analytics backend as-is.
// The guard middleware has already authorized the caller; the backend itself
// is trusted and unauthenticated.
func (h *Handler) AnalyticsProxy() gin.HandlerFunc {
	target, err := url.Parse(h.cfg.AnalyticsAPIURL)
	if err != nil {
		log.Fatalf("Invalid ANALYTICS_API_URL %q: %v", h.cfg.AnalyticsAPIURL, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		slog.Error("Analytics backend unreachable", "target", target.String(), "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"Analytics backend unavailable","code":"BAD_GATEWAY"}`))
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}
