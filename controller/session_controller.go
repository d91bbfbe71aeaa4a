// controller/session_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
)

type SessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// RegisterPublicRoutes registers the routes reachable without a session.
func (sc *SessionController) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", sc.Login)
}

// RegisterRoutes registers the session-scoped routes.
func (sc *SessionController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/logout", sc.Logout)
	r.GET("/auth/session", sc.CurrentSession)
	r.POST("/auth/refresh-features", sc.RefreshFeatures)
}

// Login endpoint
func (sc *SessionController) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", gateway_errors.ErrInvalidSessionData)
		return
	}

	session, err := sc.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case gateway_errors.ErrInvalidSessionData:
			util.RespondWithError(c, http.StatusBadRequest, "A role is required", err)
		case gateway_errors.ErrMissingOrganization:
			util.RespondWithError(c, http.StatusBadRequest, "Organization is missing, please log in again", err)
		default:
			respondServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Logout endpoint
func (sc *SessionController) Logout(c *gin.Context) {
	token := bearerToken(c)
	if err := sc.sessionService.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// CurrentSession endpoint
func (sc *SessionController) CurrentSession(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RefreshFeatures endpoint
func (sc *SessionController) RefreshFeatures(c *gin.Context) {
	session, err := sc.sessionService.RefreshFeatures(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func bearerToken(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}
