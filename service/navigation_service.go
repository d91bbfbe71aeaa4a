// service/navigation_service.go
package service

import (
	"context"

	"github.com/orgdesk/orgdesk/audit"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
)

// INavigationService defines the interface for navigation decisions
type INavigationService interface {
	VisibleNavigation(ctx context.Context, s model.Session) []model.NavItem
	CheckRoute(ctx context.Context, s model.Session, path string) policy.RouteDecision
}

type NavigationService struct {
	auditService  audit.Service
	decisionCache *policy.DecisionCache
}

var _ INavigationService = &NavigationService{}

func NewNavigationService(auditService audit.Service, decisionCache *policy.DecisionCache) *NavigationService {
	return &NavigationService{
		auditService:  auditService,
		decisionCache: decisionCache,
	}
}

// VisibleNavigation evaluates the catalog for the session. Results are
// memoized per token until features change or the session ends.
func (s *NavigationService) VisibleNavigation(ctx context.Context, session model.Session) []model.NavItem {
	key := session.Token + ":nav"
	if session.Token != "" {
		if cached, ok := s.decisionCache.Get(key); ok {
			if items, ok := cached.([]model.NavItem); ok {
				return items
			}
		}
	}

	items := policy.VisibleItems(policy.Catalog(session), session)
	if session.Token != "" {
		s.decisionCache.Set(key, items)
	}
	return items
}

// CheckRoute runs the role/path guard; denials are audited.
func (s *NavigationService) CheckRoute(ctx context.Context, session model.Session, path string) policy.RouteDecision {
	decision := policy.CheckRoute(session.Role, path)
	if decision != policy.RouteAllow {
		audit.Record(ctx, s.auditService, session, "route", "", path, decision.String(), "blocked path")
	}
	return decision
}
