// service/leave_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/orgdesk/orgdesk/audit"
	"github.com/orgdesk/orgdesk/dao"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/orgdesk/orgdesk/util"
	"github.com/orgdesk/orgdesk/workflow"
)

// ILeaveService defines the interface for the leave approval workflow
type ILeaveService interface {
	Decide(ctx context.Context, s model.Session, id string, decision workflow.Decision, remarks string) (*model.LeaveRequest, error)
}

type LeaveService struct {
	resourceDAO  *dao.ResourceDAO
	auditService audit.Service
	eventBus     *util.EventBus
}

var _ ILeaveService = &LeaveService{}

func NewLeaveService(resourceDAO *dao.ResourceDAO, auditService audit.Service, eventBus *util.EventBus) *LeaveService {
	return &LeaveService{
		resourceDAO:  resourceDAO,
		auditService: auditService,
		eventBus:     eventBus,
	}
}

// Decide applies an approval verdict to a pending leave request. The
// transition is computed locally, then persisted; the stored record only
// changes if the backend accepts the update.
func (s *LeaveService) Decide(ctx context.Context, session model.Session, id string, decision workflow.Decision, remarks string) (*model.LeaveRequest, error) {
	record, err := s.resourceDAO.Get(ctx, model.DoctypeLeaveRequest, id, policy.DetailQuery(session))
	if err != nil {
		return nil, err
	}

	current := model.LeaveRequestFromRecord(record)
	updated, err := workflow.TransitionLeave(session, current, decision, remarks)
	if err != nil {
		audit.Record(ctx, s.auditService, session, "leave_decision", model.DoctypeLeaveRequest, id, "deny", err.Error())
		return nil, err
	}

	stored, err := s.resourceDAO.Update(ctx, model.DoctypeLeaveRequest, id, updated.Apply(record), policy.DetailQuery(session))
	if err != nil {
		return nil, err
	}

	result := model.LeaveRequestFromRecord(stored)
	if result.Status == "" {
		result = updated
	}

	s.eventBus.Publish(ctx, util.EventLeaveTransitioned, result)
	audit.Record(ctx, s.auditService, session, "leave_decision", model.DoctypeLeaveRequest, id, "allow",
		string(decision)+" -> "+result.Status)

	logger.Info("Leave request transitioned",
		zap.String("leaveRequestID", id),
		zap.String("from", current.Status),
		zap.String("to", result.Status),
		zap.String("actorRole", string(session.Role)))
	return &result, nil
}
