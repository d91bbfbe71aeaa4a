// controller/controllers.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
)

type Controllers struct {
	Session    *SessionController
	Navigation *NavigationController
	Resource   *ResourceController
	Leave      *LeaveController
	Dashboard  *DashboardController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Session:    NewSessionController(services.Session),
		Navigation: NewNavigationController(services.Navigation),
		Resource:   NewResourceController(services.Resource),
		Leave:      NewLeaveController(services.Leave),
		Dashboard:  NewDashboardController(services.Dashboard),
	}
}

// respondServiceError maps the error taxonomy onto HTTP responses. Backend
// error messages pass through verbatim; everything else gets its sentinel
// message.
func respondServiceError(c *gin.Context, err error) {
	var backendErr *gateway_errors.BackendError
	var validationErr *gateway_errors.ValidationError

	switch {
	case errors.Is(err, gateway_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Access denied", err)
	case errors.Is(err, gateway_errors.ErrRecordNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Record not found", err)
	case errors.Is(err, gateway_errors.ErrSessionNotFound), errors.Is(err, gateway_errors.ErrUnauthenticated):
		util.RespondWithError(c, http.StatusUnauthorized, "Session expired or invalid", err)
	case errors.Is(err, gateway_errors.ErrSelfApproval):
		util.RespondWithError(c, http.StatusConflict, "You cannot act on your own request", err)
	case errors.Is(err, gateway_errors.ErrInvalidTransition):
		util.RespondWithError(c, http.StatusConflict, "Request is not in a state that allows this action", err)
	case errors.Is(err, gateway_errors.ErrEvidenceRequired):
		util.RespondWithError(c, http.StatusUnprocessableEntity, "Completion evidence is required before review", err)
	case errors.As(err, &validationErr):
		util.RespondWithError(c, http.StatusBadRequest, validationErr.Error(), err)
	case errors.As(err, &backendErr):
		util.RespondWithError(c, backendErr.StatusCode, backendErr.Message, err)
	case errors.Is(err, gateway_errors.ErrBackendUnavailable):
		util.RespondWithError(c, http.StatusBadGateway, "Backend unreachable", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
