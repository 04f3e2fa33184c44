package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bakery_storefront/internal/metrics"
	"bakery_storefront/internal/session"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "bakery_session"

	sessionContextKey = "session"
)

// Sessions resolves the browsing session of every request from the session
// header or cookie, starting a new one when the client has none.
func Sessions(manager *session.Manager, cookieMaxAge int, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(SessionCookie)
		}
		if id == "" {
			id = manager.NewID()
		}

		s, err := manager.Get(c.Request.Context(), id)
		if err != nil {
			log.Error("failed to load session", zap.String("session_id", id), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		metrics.ActiveSessions.Set(float64(manager.Len()))

		c.SetCookie(SessionCookie, id, cookieMaxAge, "/", "", false, true)
		c.Header(SessionHeader, id)
		c.Set(sessionContextKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionContextKey).(*session.Session)
}

// RequireAuth rejects requests from sessions nobody is logged into.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Identity.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required", "redirect": "/"})
			return
		}
		c.Next()
	}
}

// RequireAdmin sends everyone but admins back to the home page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).Identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required", "redirect": "/"})
			return
		}
		c.Next()
	}
}
