// controller/navigation_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgdesk/orgdesk/controller"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	service_mock "github.com/orgdesk/orgdesk/test/mock"
)

func TestNavigationController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	session := model.Session{Token: "tok1", Role: model.RoleEmployee, OrganizationID: "org1"}
	mockNavigationService := new(service_mock.MockNavigationService)
	navigationController := controller.NewNavigationController(mockNavigationService)
	router := setupRouter(session)
	navigationController.RegisterRoutes(router.Group("/api"))

	t.Run("GetNavigation", func(t *testing.T) {
		mockNavigationService.ExpectedCalls = nil
		mockNavigationService.On("VisibleNavigation", anyCtx, session).
			Return([]model.NavItem{
				{Label: "Staff Portal", Href: "/employee-dashboard"},
				{Label: "Notifications", Href: "/notifications"},
			}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/navigation", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Staff Portal")
	})

	t.Run("CheckRoute_Blocked", func(t *testing.T) {
		mockNavigationService.ExpectedCalls = nil
		mockNavigationService.On("CheckRoute", anyCtx, session, "/hr").
			Return(policy.RouteRedirectEmployeeDashboard).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/navigation/route-check?path=/hr", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "redirect_employee_dashboard")
		assert.Contains(t, w.Body.String(), "/employee-dashboard")
	})

	t.Run("CheckRoute_MissingPath", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/navigation/route-check", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
