package policy

import (
	"strings"

	"github.com/orgdesk/orgdesk/model"
)

// RouteDecision is the outcome of a navigation check.
type RouteDecision int

const (
	RouteAllow RouteDecision = iota
	RouteRedirectLogin
	RouteRedirectEmployeeDashboard
)

func (d RouteDecision) String() string {
	switch d {
	case RouteAllow:
		return "allow"
	case RouteRedirectLogin:
		return "redirect_login"
	case RouteRedirectEmployeeDashboard:
		return "redirect_employee_dashboard"
	default:
		return "unknown"
	}
}

// Administrative areas an Employee must never reach. This list is
// maintained independently of the navigation catalog; the two can drift
// and that divergence is intentional.
var adminDashboardPrefixes = []string{
	"/hr", "/organization-dashboard", "/finance", "/ops-dashboard", "/superadmin", "/department/",
}

var adminListPrefixes = []string{
	"/employee", "/student", "/studycenter", "/program", "/university",
	"/jobopening", "/salesinvoice", "/paymententry", "/expenseclaim", "/attendance",
}

// CheckRoute decides whether a role may stay on the given path. Only the
// Employee role is restricted; the check runs on every navigation, not
// once at mount.
func CheckRoute(role model.Role, path string) RouteDecision {
	if role == "" {
		return RouteRedirectLogin
	}
	if role != model.RoleEmployee {
		return RouteAllow
	}

	if path == "/employee-dashboard" || path == "/notifications" || path == "/login" {
		return RouteAllow
	}

	blocked := false
	for _, prefix := range adminDashboardPrefixes {
		if strings.HasPrefix(path, prefix) {
			blocked = true
			break
		}
	}
	if !blocked {
		for _, prefix := range adminListPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				blocked = true
				break
			}
		}
	}

	// Employees may still file complaints, view holidays, and log
	// attendance through the generic record pages.
	actionPath := strings.HasPrefix(path, "/complaint") ||
		strings.HasPrefix(path, "/holiday") ||
		strings.HasPrefix(path, "/attendance")

	if blocked && !actionPath {
		return RouteRedirectEmployeeDashboard
	}
	return RouteAllow
}
