package policy

import (
	"net/url"
	"regexp"
	"time"

	"github.com/orgdesk/orgdesk/model"
)

// Doctypes that are not siloed by department for admin-class viewers.
var globalDoctypes = map[model.Doctype]bool{
	model.DoctypeEmployee:   true,
	model.DoctypeStudent:    true,
	model.DoctypeJobOpening: true,
	model.DoctypeComplaint:  true,
}

// Doctypes whose records belong to a department; used by the path-derived
// department fallback for organization-level admins.
var departmentalDoctypes = map[model.Doctype]bool{
	model.DoctypeAnnouncement: true,
	model.DoctypeHoliday:      true,
	model.DoctypePerformance:  true,
}

var (
	hrPathPattern      = regexp.MustCompile(`(?i)^/(hr|employee|jobopening|attendance|holiday)`)
	opsPathPattern     = regexp.MustCompile(`(?i)^/(ops-dashboard|student|university|program|studycenter)`)
	financePathPattern = regexp.MustCompile(`(?i)^/(finance|salesinvoice|payment|expense)`)
)

// ScopeQuery builds the upstream query parameters for a list fetch. The
// server-side scope is a performance/privacy optimization; PostFilter is
// the boundary that must hold even if the backend ignores these params.
// path is the client's current route, used only for the admin department
// fallback on departmental doctypes.
func ScopeQuery(doctype model.Doctype, s model.Session, path string) url.Values {
	q := url.Values{}
	q.Set("organizationId", s.OrganizationID)

	deptID := s.DepartmentID
	deptName := s.DepartmentName

	// Organization-level admins browsing a departmental list without a
	// department of their own: infer the department from where they are.
	if deptName == "" &&
		(s.Role == model.RoleOrganizationAdmin || s.Role == model.RoleSuperAdmin) &&
		departmentalDoctypes[doctype] {
		switch {
		case hrPathPattern.MatchString(path):
			deptName = "Human Resources"
		case opsPathPattern.MatchString(path):
			deptName = "Operations"
		case financePathPattern.MatchString(path):
			deptName = "Finance"
		}
	}

	// Department silo. Global doctypes are exempt for admin-class roles;
	// job openings are never siloed for an HR department.
	if !(globalDoctypes[doctype] && s.IsListAdmin()) {
		hrJobOpenings := doctype == model.DoctypeJobOpening && s.InHRDepartment()
		if !hrJobOpenings {
			if deptID != "" {
				q.Set("departmentId", deptID)
			}
			if deptName != "" {
				q.Set("department", deptName)
			}
		}
	}

	// Complaints: only HR (by role or department), and SuperAdmin, see the
	// full set. OrganizationAdmin is deliberately restricted: they might be
	// a department head acting as org admin.
	if doctype == model.DoctypeComplaint {
		if complaintAdmin(s) {
			q.Set("view", "all")
		} else {
			if s.EmployeeID != "" {
				q.Set("employeeId", s.EmployeeID)
			}
			// Department admins have no employee id; the username param is
			// what scopes their fetch.
			if s.UserName != "" {
				q.Set("username", s.UserName)
			}
		}
	}

	// Study centers only see their own students and marks.
	if s.Role == model.RoleStudyCenter &&
		(doctype == model.DoctypeStudent || doctype == model.DoctypeStudentApplicant || doctype == model.DoctypeInternalMark) {
		if s.StudyCenterID != "" {
			q.Set("studyCenterId", s.StudyCenterID)
		}
		if s.StudyCenterName != "" {
			q.Set("studyCenter", s.StudyCenterName)
		}
	}

	return q
}

// DetailQuery builds the query parameters for a single-record fetch or
// save. Global admins are not pinned to their own department.
func DetailQuery(s model.Session) url.Values {
	q := url.Values{}
	q.Set("organizationId", s.OrganizationID)
	if s.DepartmentID != "" && !s.IsGlobalAdmin() {
		q.Set("departmentId", s.DepartmentID)
	}
	return q
}

// OrgQuery scopes a request to the session's organization alone, with no
// department narrowing. Creates, deletes and org-wide lists use it.
func OrgQuery(s model.Session) url.Values {
	q := url.Values{}
	q.Set("organizationId", s.OrganizationID)
	return q
}

// AnnouncementQuery scopes the dashboard announcement fetch: restricted
// roles see only their department, admins see all.
func AnnouncementQuery(s model.Session) url.Values {
	q := url.Values{}
	q.Set("organizationId", s.OrganizationID)
	if (s.Role == model.RoleEmployee || s.Role == model.RoleStudent) && s.DepartmentID != "" {
		q.Set("departmentId", s.DepartmentID)
	}
	return q
}

// AssignedTaskQuery scopes the dashboard task widget to the session user.
func AssignedTaskQuery(s model.Session) url.Values {
	q := url.Values{}
	q.Set("organizationId", s.OrganizationID)
	q.Set("assignedTo", s.UserID)
	return q
}

func complaintAdmin(s model.Session) bool {
	return s.Role == model.RoleHR || s.Role == model.RoleSuperAdmin || s.InHRDepartment()
}

// PostFilter applies the client-side privacy boundary after a list fetch.
// It must agree with ScopeQuery; the backend is assumed imperfect.
func PostFilter(doctype model.Doctype, s model.Session, records []model.Record) []model.Record {
	switch doctype {
	case model.DoctypeComplaint:
		if complaintAdmin(s) {
			return records
		}
		return filterComplaints(s, records)
	case model.DoctypeAnnouncement:
		return filterAnnouncements(records, time.Now())
	default:
		return records
	}
}

// OwnsComplaint reports whether the session owns the complaint: the
// employee id must match, or — for accounts without an employee id — the
// username must match, or the employee name matches a record with no
// employee id at all. A complaint with no matching owner is excluded.
func OwnsComplaint(s model.Session, c model.Complaint) bool {
	if s.EmployeeID != "" {
		return c.EmployeeID == s.EmployeeID
	}
	if s.UserName != "" {
		return c.Username == s.UserName || (c.EmployeeID == "" && c.EmployeeName == s.UserName)
	}
	return false
}

func filterComplaints(s model.Session, records []model.Record) []model.Record {
	var out []model.Record
	for _, r := range records {
		if OwnsComplaint(s, model.ComplaintFromRecord(r)) {
			out = append(out, r)
		}
	}
	return out
}

// filterAnnouncements drops entries targeted at no department and entries
// outside their display window.
func filterAnnouncements(records []model.Record, now time.Time) []model.Record {
	var out []model.Record
	for _, r := range records {
		a := model.AnnouncementFromRecord(r)
		if a.Department == "None" {
			continue
		}
		if !a.ActiveAt(now) {
			continue
		}
		out = append(out, r)
	}
	return out
}
