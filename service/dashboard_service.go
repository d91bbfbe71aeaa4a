// service/dashboard_service.go
package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/orgdesk/orgdesk/dao"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
)

// Dashboard is the employee portal payload: the four widgets fetched in
// parallel. A widget that fails fetches as empty; the others are
// unaffected.
type Dashboard struct {
	Announcements []model.Record `json:"announcements"`
	Holidays      []model.Record `json:"holidays"`
	Complaints    []model.Record `json:"complaints"`
	Tasks         []model.Record `json:"tasks"`
}

// IDashboardService defines the interface for dashboard aggregation
type IDashboardService interface {
	EmployeeDashboard(ctx context.Context, s model.Session) (*Dashboard, error)
}

type DashboardService struct {
	resourceDAO *dao.ResourceDAO
}

var _ IDashboardService = &DashboardService{}

func NewDashboardService(resourceDAO *dao.ResourceDAO) *DashboardService {
	return &DashboardService{resourceDAO: resourceDAO}
}

// EmployeeDashboard aggregates the portal widgets. Fetches run
// concurrently; widget failures degrade to an empty panel rather than
// failing the whole dashboard.
func (s *DashboardService) EmployeeDashboard(ctx context.Context, session model.Session) (*Dashboard, error) {
	dashboard := &Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.resourceDAO.List(gctx, model.DoctypeAnnouncement, policy.AnnouncementQuery(session))
		if err != nil {
			logger.Warn("Dashboard announcements fetch failed", zap.Error(err))
			return nil
		}
		dashboard.Announcements = policy.PostFilter(model.DoctypeAnnouncement, session, records)
		return nil
	})

	g.Go(func() error {
		// The holiday calendar is organization-wide; no department silo.
		records, err := s.resourceDAO.List(gctx, model.DoctypeHoliday, policy.OrgQuery(session))
		if err != nil {
			logger.Warn("Dashboard holidays fetch failed", zap.Error(err))
			return nil
		}
		dashboard.Holidays = records
		return nil
	})

	// Complaints need an owner to scope by; a session with neither an
	// employee id nor a username would fetch someone else's records.
	if session.EmployeeID != "" || (session.UserName != "" && session.Role != model.RoleStudent) {
		g.Go(func() error {
			records, err := s.resourceDAO.List(gctx, model.DoctypeComplaint,
				policy.ScopeQuery(model.DoctypeComplaint, session, "/employee-dashboard"))
			if err != nil {
				logger.Warn("Dashboard complaints fetch failed", zap.Error(err))
				return nil
			}
			dashboard.Complaints = policy.PostFilter(model.DoctypeComplaint, session, records)
			return nil
		})
	}

	if session.UserID != "" {
		g.Go(func() error {
			records, err := s.resourceDAO.List(gctx, model.DoctypeTask, policy.AssignedTaskQuery(session))
			if err != nil {
				logger.Warn("Dashboard tasks fetch failed", zap.Error(err))
				return nil
			}
			dashboard.Tasks = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}
