// controller/leave_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
	"github.com/orgdesk/orgdesk/workflow"
)

type LeaveController struct {
	leaveService service.ILeaveService
}

func NewLeaveController(leaveService service.ILeaveService) *LeaveController {
	return &LeaveController{leaveService: leaveService}
}

// RegisterRoutes registers the API routes
func (lc *LeaveController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/leaverequest/:id/decision", lc.Decide)
}

type leaveDecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Remarks  string `json:"remarks"`
}

// Decide applies an approve/reject verdict to a pending leave request.
func (lc *LeaveController) Decide(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}

	var req leaveDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid decision data", gateway_errors.ErrInvalidRecordData)
		return
	}

	var decision workflow.Decision
	switch req.Decision {
	case string(workflow.DecisionApprove):
		decision = workflow.DecisionApprove
	case string(workflow.DecisionReject):
		decision = workflow.DecisionReject
	default:
		util.RespondWithError(c, http.StatusBadRequest, "Decision must be approve or reject", gateway_errors.ErrInvalidRecordData)
		return
	}

	updated, err := lc.leaveService.Decide(c.Request.Context(), session, c.Param("id"), decision, req.Remarks)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
