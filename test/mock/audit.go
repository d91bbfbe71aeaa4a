// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/orgdesk/orgdesk/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogDecision(ctx context.Context, log audit.AccessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryDecisions(ctx context.Context, from, to time.Time, userID, doctype string) ([]audit.AccessLog, error) {
	args := m.Called(ctx, from, to, userID, doctype)
	return args.Get(0).([]audit.AccessLog), args.Error(1)
}
