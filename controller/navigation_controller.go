// controller/navigation_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
)

type NavigationController struct {
	navigationService service.INavigationService
}

func NewNavigationController(navigationService service.INavigationService) *NavigationController {
	return &NavigationController{navigationService: navigationService}
}

// RegisterRoutes registers the API routes
func (nc *NavigationController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/navigation", nc.GetNavigation)
	r.GET("/navigation/route-check", nc.CheckRoute)
}

// GetNavigation returns the navigation entries visible to the session.
func (nc *NavigationController) GetNavigation(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}

	items := nc.navigationService.VisibleNavigation(c.Request.Context(), session)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CheckRoute decides whether the session may stay on a path and where to
// send it otherwise.
func (nc *NavigationController) CheckRoute(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}

	path := c.Query("path")
	if path == "" {
		util.RespondWithError(c, http.StatusBadRequest, "A path is required", gateway_errors.ErrRouteBlocked)
		return
	}

	decision := nc.navigationService.CheckRoute(c.Request.Context(), session, path)
	resp := gin.H{"decision": decision.String()}
	switch decision {
	case policy.RouteRedirectLogin:
		resp["redirect"] = "/login"
	case policy.RouteRedirectEmployeeDashboard:
		resp["redirect"] = "/employee-dashboard"
	}
	c.JSON(http.StatusOK, resp)
}
