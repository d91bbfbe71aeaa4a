// controller/dashboard_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
)

type DashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// RegisterRoutes registers the API routes
func (dc *DashboardController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/employee", dc.EmployeeDashboard)
}

// EmployeeDashboard returns the portal widgets for the session.
func (dc *DashboardController) EmployeeDashboard(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}

	dashboard, err := dc.dashboardService.EmployeeDashboard(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
