// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
)

// SessionContextKey is where the auth middleware stores the resolved
// session on the gin context.
const SessionContextKey = "session"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// SessionFromContext returns the session the auth middleware attached.
// The boolean is false on unauthenticated routes.
func SessionFromContext(c *gin.Context) (model.Session, bool) {
	v, exists := c.Get(SessionContextKey)
	if !exists {
		return model.Session{}, false
	}
	s, ok := v.(model.Session)
	return s, ok
}
