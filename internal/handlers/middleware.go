package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

// corsMiddleware allows any origin; the lamp, the Unity client and the
// dashboard are served from different hosts.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          corsMaxAge,
	})
}

// requestLogger logs every request before it is dispatched.
func (h *Handler) requestLogger(c *gin.Context) {
	if h.log != nil {
		h.log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"timestamp", time.Now().UTC().Format(time.RFC3339Nano),
		)
	}
	c.Next()
}

// recoverJSON turns a handler panic into 500 {error}.
func (h *Handler) recoverJSON(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	if h.log != nil {
		h.log.Errorw("handler_panic", "err", err, "method", c.Request.Method, "path", c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errInternal})
}
