// controller/resource_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/util"
	helper_util "github.com/orgdesk/orgdesk/util/helper"
)

type ResourceController struct {
	resourceService service.IResourceService
}

func NewResourceController(resourceService service.IResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// RegisterRoutes registers the API routes
func (rc *ResourceController) RegisterRoutes(r *gin.RouterGroup) {
	resources := r.Group("/resource/:doctype")
	{
		resources.GET("", rc.ListRecords)
		resources.POST("", rc.CreateRecord)
		resources.GET("/:id", rc.GetRecord)
		resources.PUT("/:id", rc.SaveRecord)
		resources.DELETE("/:id", rc.DeleteRecord)
	}
}

// ListRecords endpoint. The client passes its current route in the "from"
// query so departmental lists can be scoped for admins without a
// department of their own.
func (rc *ResourceController) ListRecords(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}
	doctype := model.Doctype(c.Param("doctype"))

	records, err := rc.resourceService.List(c.Request.Context(), session, doctype, c.Query("from"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	page := paginate(records, limit, offset)

	c.JSON(http.StatusOK, gin.H{"data": page, "total": len(records)})
}

// GetRecord endpoint. The response carries the per-field access map so
// a form can render hidden and read-only fields correctly.
func (rc *ResourceController) GetRecord(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}
	doctype := model.Doctype(c.Param("doctype"))

	record, err := rc.resourceService.Get(c.Request.Context(), session, doctype, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        record,
		"fieldAccess": rc.resourceService.FieldViews(doctype, session, record),
	})
}

// CreateRecord endpoint
func (rc *ResourceController) CreateRecord(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}
	doctype := model.Doctype(c.Param("doctype"))

	var record model.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid record data", gateway_errors.ErrInvalidRecordData)
		return
	}

	stored, err := rc.resourceService.Create(c.Request.Context(), session, doctype, record)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// SaveRecord endpoint
func (rc *ResourceController) SaveRecord(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}
	doctype := model.Doctype(c.Param("doctype"))

	var record model.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid record data", gateway_errors.ErrInvalidRecordData)
		return
	}

	stored, err := rc.resourceService.Save(c.Request.Context(), session, doctype, c.Param("id"), record)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// DeleteRecord endpoint
func (rc *ResourceController) DeleteRecord(c *gin.Context) {
	session, ok := util.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "No session", gateway_errors.ErrUnauthenticated)
		return
	}
	doctype := model.Doctype(c.Param("doctype"))

	if err := rc.resourceService.Delete(c.Request.Context(), session, doctype, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func paginate(records []model.Record, limit, offset int) []model.Record {
	if limit < 0 || offset < 0 || offset >= len(records) {
		return []model.Record{}
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
