// dao/department_dao.go
package dao

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/orgdesk/orgdesk/db"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
)

// DepartmentDAO resolves a department's panel configuration (panel type,
// feature list, designations) at login and on feature refresh. Reads go
// through the Redis cache first.
type DepartmentDAO struct {
	Resources *ResourceDAO
}

func NewDepartmentDAO(resources *ResourceDAO) *DepartmentDAO {
	return &DepartmentDAO{Resources: resources}
}

func (dao *DepartmentDAO) GetDepartment(ctx context.Context, organizationID, departmentID string) (*model.Department, error) {
	cached, err := db.GetCachedDepartment(ctx, departmentID)
	if err != nil {
		logger.Warn("Department cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	query := url.Values{}
	query.Set("organizationId", organizationID)
	record, err := dao.Resources.Get(ctx, "department", departmentID, query)
	if err != nil {
		return nil, err
	}

	department := departmentFromRecord(record)
	if err := db.CacheDepartment(ctx, department); err != nil {
		logger.Warn("Failed to cache department", zap.Error(err))
	}
	return department, nil
}

// InvalidateDepartment drops the cached panel configuration, forcing the
// next read to hit the backend. Used when an organization admin
// customizes a department.
func (dao *DepartmentDAO) InvalidateDepartment(ctx context.Context, departmentID string) error {
	return db.DeleteCachedDepartment(ctx, departmentID)
}

func departmentFromRecord(record model.Record) *model.Department {
	department := &model.Department{
		ID:             record.ID(),
		OrganizationID: record.OrganizationID(),
	}
	if name, ok := record["name"].(string); ok {
		department.Name = name
	}
	if panelType, ok := record["panelType"].(string); ok {
		department.PanelType = panelType
	}
	if raw, ok := record["features"].([]interface{}); ok {
		for _, f := range raw {
			if feature, ok := f.(string); ok {
				department.Features = append(department.Features, feature)
			}
		}
	}
	if raw, ok := record["designations"].([]interface{}); ok {
		for _, d := range raw {
			if designation, ok := d.(string); ok {
				department.Designations = append(department.Designations, designation)
			}
		}
	}
	return department
}
