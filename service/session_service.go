// service/session_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orgdesk/orgdesk/audit"
	"github.com/orgdesk/orgdesk/dao"
	"github.com/orgdesk/orgdesk/db"
	gateway_errors "github.com/orgdesk/orgdesk/errors"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/orgdesk/orgdesk/util"
)

// LoginRequest carries the identity attributes issued by the upstream
// authenticator. The gateway trusts it the way the client used to trust
// its own storage, but keeps it server-side from here on.
type LoginRequest struct {
	Role                model.Role `json:"user_role" binding:"required"`
	OrganizationID      string     `json:"organization_id" binding:"required"`
	DepartmentID        string     `json:"department_id"`
	DepartmentName      string     `json:"department_name"`
	DepartmentPanelType string     `json:"department_panel_type"`
	EmployeeID          string     `json:"employee_id"`
	UserID              string     `json:"user_id"`
	UserName            string     `json:"user_name"`
	StudyCenterID       string     `json:"study_center_id"`
	StudyCenterName     string     `json:"study_center_name"`
}

// ISessionService defines the interface for session operations
type ISessionService interface {
	Login(ctx context.Context, req LoginRequest) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	Get(ctx context.Context, token string) (*model.Session, error)
	RefreshFeatures(ctx context.Context, token string) (*model.Session, error)
}

type SessionService struct {
	deptDAO       *dao.DepartmentDAO
	auditService  audit.Service
	eventBus      *util.EventBus
	decisionCache *policy.DecisionCache
}

var _ ISessionService = &SessionService{}

func NewSessionService(deptDAO *dao.DepartmentDAO, auditService audit.Service, eventBus *util.EventBus, decisionCache *policy.DecisionCache) *SessionService {
	return &SessionService{
		deptDAO:       deptDAO,
		auditService:  auditService,
		eventBus:      eventBus,
		decisionCache: decisionCache,
	}
}

// Login mints a session token and persists the session context. The
// department's feature list is resolved once here; RefreshFeatures picks
// up later panel customizations.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*model.Session, error) {
	if req.Role == "" {
		return nil, gateway_errors.ErrInvalidSessionData
	}
	if req.OrganizationID == "" {
		return nil, gateway_errors.ErrMissingOrganization
	}

	session := &model.Session{
		Token:               uuid.New().String(),
		Role:                req.Role,
		OrganizationID:      req.OrganizationID,
		DepartmentID:        req.DepartmentID,
		DepartmentName:      req.DepartmentName,
		DepartmentPanelType: req.DepartmentPanelType,
		EmployeeID:          req.EmployeeID,
		UserID:              req.UserID,
		UserName:            req.UserName,
		StudyCenterID:       req.StudyCenterID,
		StudyCenterName:     req.StudyCenterName,
	}

	if session.DepartmentID != "" {
		dept, err := s.deptDAO.GetDepartment(ctx, session.OrganizationID, session.DepartmentID)
		if err != nil {
			// A department that cannot be resolved leaves the session
			// featureless rather than blocking login.
			logger.Warn("Could not resolve department at login",
				zap.String("departmentId", session.DepartmentID),
				zap.Error(err))
		} else {
			session.Features = dept.Features
			if session.DepartmentName == "" {
				session.DepartmentName = dept.Name
			}
			if session.DepartmentPanelType == "" {
				session.DepartmentPanelType = dept.PanelType
			}
		}
	}

	if err := db.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventSessionCreated, *session)
	audit.Record(ctx, s.auditService, *session, "login", "", "", "allow", "")

	logger.Info("Session created",
		zap.String("userId", session.UserID),
		zap.String("role", string(session.Role)))
	return session, nil
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	session, err := db.GetSession(ctx, token)
	if err != nil {
		return err
	}

	if err := db.DeleteSession(ctx, token); err != nil {
		return err
	}
	s.decisionCache.Invalidate(token + ":")
	s.eventBus.Publish(ctx, util.EventSessionEnded, *session)
	return nil
}

func (s *SessionService) Get(ctx context.Context, token string) (*model.Session, error) {
	return db.GetSession(ctx, token)
}

// RefreshFeatures re-reads the department's panel configuration and
// updates the stored session, so a customization shows up without a
// re-login.
func (s *SessionService) RefreshFeatures(ctx context.Context, token string) (*model.Session, error) {
	session, err := db.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.DepartmentID == "" {
		return session, nil
	}

	if err := s.deptDAO.InvalidateDepartment(ctx, session.DepartmentID); err != nil {
		logger.Warn("Failed to invalidate department cache", zap.Error(err))
	}
	dept, err := s.deptDAO.GetDepartment(ctx, session.OrganizationID, session.DepartmentID)
	if err != nil {
		return nil, err
	}

	updated := session.WithFeatures(dept.Features)
	updated.DepartmentPanelType = dept.PanelType
	if err := db.SaveSession(ctx, &updated); err != nil {
		return nil, err
	}

	s.decisionCache.Invalidate(token + ":")
	s.eventBus.Publish(ctx, util.EventFeaturesRefreshed, updated)
	return &updated, nil
}
