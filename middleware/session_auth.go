// middleware/session_auth.go

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
)

// SessionAuth resolves the bearer token to a stored session and attaches
// it to the request context. Routes behind this middleware can assume an
// authenticated session is present.
func SessionAuth(sessions service.ISessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, gateway_errors.ErrSessionNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			} else {
				logger.Error("Session lookup failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			}
			c.Abort()
			return
		}

		c.Set(util.SessionContextKey, *session)
		c.Next()
	}
}
