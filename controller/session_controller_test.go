// controller/session_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/orgdesk/orgdesk/controller"
	gateway_errors "github.com/orgdesk/orgdesk/errors"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/service"
	service_mock "github.com/orgdesk/orgdesk/test/mock"
)

func TestSessionController_Login(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	gin.SetMode(gin.TestMode)
	mockSessionService := new(service_mock.MockSessionService)
	sessionController := controller.NewSessionController(mockSessionService)
	router := gin.New()
	sessionController.RegisterPublicRoutes(router.Group("/api"))

	t.Run("Success", func(t *testing.T) {
		mockSessionService.ExpectedCalls = nil
		mockSessionService.On("Login", anyCtx, service.LoginRequest{
			Role: model.RoleEmployee, OrganizationID: "org1", UserName: "alice", EmployeeID: "emp1",
		}).Return(&model.Session{
			Token: "tok1", Role: model.RoleEmployee, OrganizationID: "org1",
			UserName: "alice", EmployeeID: "emp1",
		}, nil).Once()

		body := strings.NewReader(`{"user_role":"Employee","organization_id":"org1","user_name":"alice","employee_id":"emp1"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "tok1")
	})

	t.Run("MissingRole_BadRequest", func(t *testing.T) {
		body := strings.NewReader(`{"organization_id":"org1","user_name":"alice"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingOrganization_BadRequest", func(t *testing.T) {
		mockSessionService.ExpectedCalls = nil
		mockSessionService.On("Login", anyCtx, service.LoginRequest{
			Role: model.RoleEmployee, UserName: "alice",
		}).Return(nil, gateway_errors.ErrMissingOrganization).Maybe()

		body := strings.NewReader(`{"user_role":"Employee","user_name":"alice"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSessionController_AuthedRoutes(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	session := model.Session{Token: "tok1", Role: model.RoleHR, OrganizationID: "org1"}
	mockSessionService := new(service_mock.MockSessionService)
	sessionController := controller.NewSessionController(mockSessionService)
	router := setupRouter(session)
	sessionController.RegisterRoutes(router.Group("/api"))

	t.Run("CurrentSession", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/auth/session", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_role":"HR"`)
	})

	t.Run("Logout", func(t *testing.T) {
		mockSessionService.ExpectedCalls = nil
		mockSessionService.On("Logout", anyCtx, "tok1").Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer tok1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RefreshFeatures", func(t *testing.T) {
		refreshed := session.WithFeatures([]string{"Staff Portal"})
		mockSessionService.ExpectedCalls = nil
		mockSessionService.On("RefreshFeatures", anyCtx, "tok1").Return(&refreshed, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/refresh-features", nil)
		req.Header.Set("Authorization", "Bearer tok1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Staff Portal")
	})
}
