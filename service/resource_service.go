// service/resource_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/orgdesk/orgdesk/audit"
	"github.com/orgdesk/orgdesk/dao"
	gateway_errors "github.com/orgdesk/orgdesk/errors"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/orgdesk/orgdesk/util"
	"github.com/orgdesk/orgdesk/workflow"
)

// IResourceService defines the interface for scoped record operations
type IResourceService interface {
	List(ctx context.Context, s model.Session, doctype model.Doctype, path string) ([]model.Record, error)
	Get(ctx context.Context, s model.Session, doctype model.Doctype, id string) (model.Record, error)
	FieldViews(doctype model.Doctype, s model.Session, record model.Record) map[string]string
	Create(ctx context.Context, s model.Session, doctype model.Doctype, record model.Record) (model.Record, error)
	Save(ctx context.Context, s model.Session, doctype model.Doctype, id string, record model.Record) (model.Record, error)
	Delete(ctx context.Context, s model.Session, doctype model.Doctype, id string) error
}

type ResourceService struct {
	resourceDAO    *dao.ResourceDAO
	validationUtil *util.ValidationUtil
	auditService   audit.Service
	eventBus       *util.EventBus
}

var _ IResourceService = &ResourceService{}

func NewResourceService(resourceDAO *dao.ResourceDAO, validationUtil *util.ValidationUtil, auditService audit.Service, eventBus *util.EventBus) *ResourceService {
	return &ResourceService{
		resourceDAO:    resourceDAO,
		validationUtil: validationUtil,
		auditService:   auditService,
		eventBus:       eventBus,
	}
}

// List fetches the records of a doctype the session may see. The scope
// query narrows the upstream fetch; the post filter is the boundary that
// holds even if the backend ignores the query.
func (s *ResourceService) List(ctx context.Context, session model.Session, doctype model.Doctype, path string) ([]model.Record, error) {
	if !policy.Can(session, doctype, policy.ActionList) {
		audit.Record(ctx, s.auditService, session, "list", doctype, "", "deny", "doctype outside role scope")
		return nil, gateway_errors.ErrForbidden
	}

	query := policy.ScopeQuery(doctype, session, path)
	records, err := s.resourceDAO.List(ctx, doctype, query)
	if err != nil {
		return nil, err
	}

	filtered := policy.PostFilter(doctype, session, records)
	if dropped := len(records) - len(filtered); dropped > 0 {
		audit.Record(ctx, s.auditService, session, "list", doctype, "", "filtered",
			fmt.Sprintf("%d records dropped by post filter", dropped))
	}
	return filtered, nil
}

func (s *ResourceService) Get(ctx context.Context, session model.Session, doctype model.Doctype, id string) (model.Record, error) {
	if !policy.Can(session, doctype, policy.ActionRead) {
		audit.Record(ctx, s.auditService, session, "read", doctype, id, "deny", "doctype outside role scope")
		return nil, gateway_errors.ErrForbidden
	}
	return s.resourceDAO.Get(ctx, doctype, id, policy.DetailQuery(session))
}

// FieldViews computes the per-field access map for a record, keyed by
// field name. Fields not present on the record but controlled for the
// doctype are included so a form can render them correctly.
func (s *ResourceService) FieldViews(doctype model.Doctype, session model.Session, record model.Record) map[string]string {
	fields := make(map[string]bool, len(record))
	for field := range record {
		fields[field] = true
	}
	switch doctype {
	case model.DoctypeTask:
		for _, f := range []string{"status", "description", "completionEvidence", "priority",
			"verificationStatus", "adminRemarks", "assignedTo", "subject"} {
			fields[f] = true
		}
	case model.DoctypeLeaveRequest:
		for _, f := range []string{"reason", "fromDate", "toDate", "status"} {
			fields[f] = true
		}
	}

	views := make(map[string]string, len(fields))
	for field := range fields {
		views[field] = policy.FieldView(doctype, field, session, record).String()
	}
	return views
}

func (s *ResourceService) Create(ctx context.Context, session model.Session, doctype model.Doctype, record model.Record) (model.Record, error) {
	if !policy.Can(session, doctype, policy.ActionCreate) {
		audit.Record(ctx, s.auditService, session, "create", doctype, "", "deny", "doctype outside role scope")
		return nil, gateway_errors.ErrForbidden
	}

	stamped := s.validationUtil.StampCreate(doctype, session, record)
	if err := s.validationUtil.ValidateRequired(doctype, stamped); err != nil {
		return nil, err
	}

	stored, err := s.resourceDAO.Create(ctx, doctype, stamped, policy.OrgQuery(session))
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventRecordCreated, stored)
	audit.Record(ctx, s.auditService, session, "create", doctype, stored.ID(), "allow", "")
	return stored, nil
}

// Save updates a record, running the doctype's save-time rules. Local
// state only changes on backend success: a failed save leaves nothing
// half-applied because the rewrite happens on a copy.
func (s *ResourceService) Save(ctx context.Context, session model.Session, doctype model.Doctype, id string, record model.Record) (model.Record, error) {
	if !policy.Can(session, doctype, policy.ActionUpdate) {
		audit.Record(ctx, s.auditService, session, "update", doctype, id, "deny", "doctype outside role scope")
		return nil, gateway_errors.ErrForbidden
	}

	existing, err := s.resourceDAO.Get(ctx, doctype, id, policy.DetailQuery(session))
	if err != nil {
		return nil, err
	}

	outgoing := record
	switch doctype {
	case model.DoctypeTask:
		outgoing, err = s.normalizeTaskSave(ctx, session, record, existing)
		if err != nil {
			return nil, err
		}
	case model.DoctypeLeaveRequest:
		// The form freezes once the request leaves the employee's hands;
		// the same rule is enforced here.
		if policy.FieldView(doctype, "reason", session, existing) != policy.FieldEditable {
			audit.Record(ctx, s.auditService, session, "update", doctype, id, "deny", "leave request is read-only for this session")
			return nil, gateway_errors.ErrForbidden
		}
	}

	stored, err := s.resourceDAO.Update(ctx, doctype, id, outgoing, policy.DetailQuery(session))
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *ResourceService) normalizeTaskSave(ctx context.Context, session model.Session, record, existing model.Record) (model.Record, error) {
	incoming := model.TaskFromRecord(record)
	incoming.ID = existing.ID()
	current := model.TaskFromRecord(existing)

	normalized, err := workflow.NormalizeTaskSave(session, incoming, current)
	if err != nil {
		return nil, err
	}

	if normalized.Status == model.TaskStatusPendingReview && current.Status != model.TaskStatusPendingReview {
		s.eventBus.Publish(ctx, util.EventTaskReviewSubmitted, normalized)
	}
	if normalized.VerificationStatus != current.VerificationStatus && session.Role != model.RoleEmployee {
		s.eventBus.Publish(ctx, util.EventTaskVerified, normalized)
	}
	if normalized.Status != incoming.Status {
		logger.Debug("Task save rewritten",
			zap.String("taskID", normalized.ID),
			zap.String("requestedStatus", incoming.Status),
			zap.String("storedStatus", normalized.Status))
	}

	return normalized.Apply(record), nil
}

func (s *ResourceService) Delete(ctx context.Context, session model.Session, doctype model.Doctype, id string) error {
	if !policy.Can(session, doctype, policy.ActionDelete) {
		audit.Record(ctx, s.auditService, session, "delete", doctype, id, "deny", "doctype outside role scope")
		return gateway_errors.ErrForbidden
	}

	if err := s.resourceDAO.Delete(ctx, doctype, id, policy.OrgQuery(session)); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, util.EventRecordDeleted, model.Record{"_id": id, "doctype": string(doctype)})
	audit.Record(ctx, s.auditService, session, "delete", doctype, id, "allow", "")
	return nil
}
