// controller/resource_controller_test.go
package controller_test

import (
	"encoding/json"
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
	service_mock "github.com/orgdesk/orgdesk/test/mock"
	"github.com/orgdesk/orgdesk/util"
)

func setupRouter(session model.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(util.SessionContextKey, session)
		c.Next()
	})
	return r
}

func TestResourceController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	session := model.Session{
		Token: "tok1", Role: model.RoleHR, OrganizationID: "org1", UserName: "hr.lead",
	}

	mockResourceService := new(service_mock.MockResourceService)
	resourceController := controller.NewResourceController(mockResourceService)
	router := setupRouter(session)
	api := router.Group("/api")
	resourceController.RegisterRoutes(api)

	t.Run("ListRecords_Success", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("List", anyCtx, session, model.DoctypeEmployee, "/employee").
			Return([]model.Record{{"_id": "e1"}, {"_id": "e2"}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/resource/employee?from=/employee", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data  []model.Record `json:"data"`
			Total int            `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("ListRecords_NegativePaginationRejected", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("List", anyCtx, session, model.DoctypeEmployee, "").
			Return([]model.Record{{"_id": "e1"}, {"_id": "e2"}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/resource/employee?limit=-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListRecords_Forbidden", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("List", anyCtx, session, model.DoctypeStudent, "").
			Return(nil, gateway_errors.ErrForbidden).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/resource/student", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GetRecord_IncludesFieldAccess", func(t *testing.T) {
		record := model.Record{"_id": "t1", "status": "Working"}
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("Get", anyCtx, session, model.DoctypeTask, "t1").
			Return(record, nil).Once()
		mockResourceService.On("FieldViews", model.DoctypeTask, session, record).
			Return(map[string]string{"status": "editable", "adminRemarks": "editable"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/resource/task/t1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data        model.Record      `json:"data"`
			FieldAccess map[string]string `json:"fieldAccess"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "t1", resp.Data.ID())
		assert.Equal(t, "editable", resp.FieldAccess["status"])
	})

	t.Run("GetRecord_NotFound", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("Get", anyCtx, session, model.DoctypeTask, "missing").
			Return(nil, gateway_errors.ErrRecordNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/resource/task/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("CreateRecord_ValidationError", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("Create", anyCtx, session, model.DoctypeComplaint, model.Record{"subject": "x"}).
			Return(nil, &gateway_errors.ValidationError{Field: "description"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/resource/complaint", strings.NewReader(`{"subject":"x"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "description")
	})

	t.Run("SaveRecord_EvidenceRequired", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("Save", anyCtx, session, model.DoctypeTask, "t1",
			model.Record{"status": "Completed"}).
			Return(nil, gateway_errors.ErrEvidenceRequired).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/resource/task/t1", strings.NewReader(`{"status":"Completed"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("SaveRecord_BackendErrorVerbatim", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("Save", anyCtx, session, model.DoctypeEmployee, "e1",
			model.Record{"email": "x"}).
			Return(nil, &gateway_errors.BackendError{StatusCode: http.StatusConflict, Message: "email already in use"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/resource/employee/e1", strings.NewReader(`{"email":"x"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "email already in use")
	})

	t.Run("DeleteRecord_Success", func(t *testing.T) {
		mockResourceService.ExpectedCalls = nil
		mockResourceService.On("Delete", anyCtx, session, model.DoctypeTask, "t1").
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/resource/task/t1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
