// audit/service.go
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
)

type Service interface {
	LogDecision(ctx context.Context, log AccessLog) error
	QueryDecisions(ctx context.Context, from, to time.Time, userID, doctype string) ([]AccessLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogDecision(ctx context.Context, log AccessLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	return s.repo.LogDecision(ctx, log)
}

func (s *service) QueryDecisions(ctx context.Context, from, to time.Time, userID, doctype string) ([]AccessLog, error) {
	return s.repo.QueryDecisions(ctx, from, to, userID, doctype)
}

// Record fires a decision log without failing the request path: audit
// write errors are logged and swallowed.
func Record(ctx context.Context, svc Service, s model.Session, action string, doctype model.Doctype, resourceID, decision, reason string) {
	if svc == nil {
		return
	}
	err := svc.LogDecision(ctx, AccessLog{
		Timestamp:      time.Now(),
		UserID:         s.UserID,
		Role:           string(s.Role),
		OrganizationID: s.OrganizationID,
		Action:         action,
		Doctype:        string(doctype),
		ResourceID:     resourceID,
		Decision:       decision,
		Reason:         reason,
	})
	if err != nil {
		logger.Warn("Failed to write access decision", zap.Error(err))
	}
}
