// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/orgdesk/orgdesk/service"
	"github.com/orgdesk/orgdesk/workflow"
)

// MockSessionService is a mock implementation of service.ISessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req service.LoginRequest) (*model.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionService) Get(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionService) RefreshFeatures(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

// MockNavigationService is a mock implementation of service.INavigationService
type MockNavigationService struct {
	mock.Mock
}

func (m *MockNavigationService) VisibleNavigation(ctx context.Context, s model.Session) []model.NavItem {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.NavItem)
}

func (m *MockNavigationService) CheckRoute(ctx context.Context, s model.Session, path string) policy.RouteDecision {
	args := m.Called(ctx, s, path)
	return args.Get(0).(policy.RouteDecision)
}

// MockResourceService is a mock implementation of service.IResourceService
type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) List(ctx context.Context, s model.Session, doctype model.Doctype, path string) ([]model.Record, error) {
	args := m.Called(ctx, s, doctype, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockResourceService) Get(ctx context.Context, s model.Session, doctype model.Doctype, id string) (model.Record, error) {
	args := m.Called(ctx, s, doctype, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockResourceService) FieldViews(doctype model.Doctype, s model.Session, record model.Record) map[string]string {
	args := m.Called(doctype, s, record)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]string)
}

func (m *MockResourceService) Create(ctx context.Context, s model.Session, doctype model.Doctype, record model.Record) (model.Record, error) {
	args := m.Called(ctx, s, doctype, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockResourceService) Save(ctx context.Context, s model.Session, doctype model.Doctype, id string, record model.Record) (model.Record, error) {
	args := m.Called(ctx, s, doctype, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Record), args.Error(1)
}

func (m *MockResourceService) Delete(ctx context.Context, s model.Session, doctype model.Doctype, id string) error {
	args := m.Called(ctx, s, doctype, id)
	return args.Error(0)
}

// MockLeaveService is a mock implementation of service.ILeaveService
type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) Decide(ctx context.Context, s model.Session, id string, decision workflow.Decision, remarks string) (*model.LeaveRequest, error) {
	args := m.Called(ctx, s, id, decision, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

// MockDashboardService is a mock implementation of service.IDashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) EmployeeDashboard(ctx context.Context, s model.Session) (*service.Dashboard, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
