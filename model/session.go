package model

// Role is the authenticated user's role as issued at login. Absence of a
// role means the request is unauthenticated.
type Role string

const (
	RoleEmployee         Role = "Employee"
	RoleDepartmentAdmin  Role = "DepartmentAdmin"
	RoleHR               Role = "HR"
	RoleHumanResources   Role = "HumanResources"
	RoleOperations       Role = "Operations"
	RoleFinance          Role = "Finance"
	RoleInventory        Role = "Inventory"
	RoleCRM              Role = "CRM"
	RoleProjects         Role = "Projects"
	RoleSupport          Role = "Support"
	RoleAssets           Role = "Assets"
	RoleStudyCenter      Role = "StudyCenter"
	RoleOrganizationAdmin Role = "OrganizationAdmin"
	RoleSuperAdmin       Role = "SuperAdmin"
	RoleStudent          Role = "Student"
	RoleHeadOfDepartment Role = "HeadOfDepartment"
)

// Session is the authenticated context threaded through every decision.
// It is constructed once per request from the session store and never
// mutated in place.
type Session struct {
	Token               string   `json:"token,omitempty"`
	Role                Role     `json:"user_role"`
	OrganizationID      string   `json:"organization_id"`
	DepartmentID        string   `json:"department_id,omitempty"`
	DepartmentName      string   `json:"department_name,omitempty"`
	DepartmentPanelType string   `json:"department_panel_type,omitempty"`
	EmployeeID          string   `json:"employee_id,omitempty"`
	UserID              string   `json:"user_id,omitempty"`
	UserName            string   `json:"user_name"`
	Features            []string `json:"user_features,omitempty"`
	StudyCenterID       string   `json:"study_center_id,omitempty"`
	StudyCenterName     string   `json:"study_center_name,omitempty"`
}

// Authenticated reports whether the session carries a role.
func (s Session) Authenticated() bool {
	return s.Role != ""
}

// HasFeature reports whether the session's department feature list contains
// the given feature flag.
func (s Session) HasFeature(feature string) bool {
	for _, f := range s.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// InHRDepartment reports whether the session belongs to a department named
// "Human Resources" (or the short form "HR"), independent of role.
func (s Session) InHRDepartment() bool {
	return s.DepartmentName == "Human Resources" || s.DepartmentName == "HR"
}

// WithFeatures returns a copy of the session carrying the given feature
// list. The receiver is left unchanged.
func (s Session) WithFeatures(features []string) Session {
	s.Features = append([]string(nil), features...)
	return s
}

func roleIn(r Role, set []Role) bool {
	for _, candidate := range set {
		if candidate == r {
			return true
		}
	}
	return false
}

// globalAdminRoles are never scoped to their own department when fetching
// a single record.
var globalAdminRoles = []Role{
	RoleHR, RoleHumanResources, RoleSuperAdmin, RoleOrganizationAdmin, RoleOperations,
}

// IsGlobalAdmin reports whether the role bypasses department scoping on
// detail fetches and saves.
func (s Session) IsGlobalAdmin() bool {
	return roleIn(s.Role, globalAdminRoles)
}

// listAdminRoles see employee/student/jobopening lists organization-wide.
var listAdminRoles = []Role{
	RoleSuperAdmin, RoleOrganizationAdmin, RoleHR, RoleOperations,
}

// IsListAdmin reports whether the role sees global doctypes without a
// department silo.
func (s Session) IsListAdmin() bool {
	return roleIn(s.Role, listAdminRoles)
}
