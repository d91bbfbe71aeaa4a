package policy

import (
	"strings"

	"github.com/orgdesk/orgdesk/model"
)

// deptAdminAlwaysVisible are shown to DepartmentAdmin regardless of the
// department's feature list.
var deptAdminAlwaysVisible = map[string]bool{
	"Task Management": true,
	"Tasks":           true,
	"Leave Requests":  true,
}

// staffPortalBundle is the set of features the compound "Staff Portal"
// feature grants as a block.
var staffPortalBundle = map[string]bool{
	"Announcements":       true,
	"Employee List":       true,
	"Tasks":               true,
	"Attendance":          true,
	"Holidays":            true,
	"Employee Complaints": true,
}

// VisibleItems filters the catalog down to the entries a session may see,
// preserving catalog order and deduplicating by case-insensitive label
// (first occurrence wins). It is a pure function of the session and the
// catalog.
func VisibleItems(items []model.NavItem, s model.Session) []model.NavItem {
	if s.Role == model.RoleEmployee {
		return employeeSandbox(items)
	}

	var filtered []model.NavItem
	for _, item := range items {
		if visible(item, s) {
			filtered = append(filtered, item)
		}
	}
	return dedupeByLabel(filtered)
}

func visible(item model.NavItem, s model.Session) bool {
	roleAllowed := item.AllowsRole(s.Role)

	if !roleAllowed && s.Role != model.RoleDepartmentAdmin {
		return false
	}

	// Feature gate: applies to DepartmentAdmin and to any session whose
	// department customized its panel (non-empty feature list).
	if s.Role == model.RoleDepartmentAdmin || len(s.Features) > 0 {
		if item.Feature == "" || (s.Role == model.RoleDepartmentAdmin && deptAdminAlwaysVisible[item.Label]) {
			return roleAllowed
		}

		if s.HasFeature("Staff Portal") && staffPortalBundle[item.Feature] {
			return true
		}

		return s.HasFeature(item.Feature)
	}

	return roleAllowed
}

// employeeSandbox is a hard sandbox, not a filter composition: employees
// see exactly their portal, a synthetic leave-requests entry, and
// notifications, regardless of department features.
func employeeSandbox(items []model.NavItem) []model.NavItem {
	var out []model.NavItem
	if portal, ok := findByLabel(items, "Staff Portal"); ok {
		out = append(out, portal)
	}
	out = append(out, model.NavItem{
		Icon:  "calendar-days",
		Label: "My Leave Requests",
		Href:  "/leaverequest",
		Roles: []model.Role{model.RoleEmployee},
	})
	if bell, ok := findByLabel(items, "Notifications"); ok {
		out = append(out, bell)
	}
	return out
}

func findByLabel(items []model.NavItem, label string) (model.NavItem, bool) {
	for _, item := range items {
		if item.Label == label {
			return item, true
		}
	}
	return model.NavItem{}, false
}

func dedupeByLabel(items []model.NavItem) []model.NavItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		key := strings.ToLower(item.Label)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
