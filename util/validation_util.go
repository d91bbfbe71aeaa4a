// util/validation_util.go

package util

import (
	"strings"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/model"
)

// requiredFields lists the fields a create must carry, per doctype.
// Validation runs after stamping, so session-derived fields count.
var requiredFields = map[model.Doctype][]string{
	model.DoctypeComplaint:    {"subject", "description", "department"},
	model.DoctypeTask:         {"subject", "status", "assignedTo"},
	model.DoctypeLeaveRequest: {"fromDate", "toDate", "reason", "employeeId"},
	model.DoctypeAnnouncement: {"title", "content"},
	model.DoctypeHoliday:      {"name", "date"},
	model.DoctypeEmployee:     {"firstName", "department"},
	model.DoctypeJobOpening:   {"jobTitle", "department"},
	model.DoctypeStudent:      {"firstName", "program"},
}

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func missing(record model.Record, field string) bool {
	v, ok := record[field]
	if !ok || v == nil {
		return true
	}
	if s, isStr := v.(string); isStr {
		trimmed := strings.TrimSpace(s)
		return trimmed == "" || trimmed == "undefined" || trimmed == "null"
	}
	return false
}

// ValidateRequired checks the doctype's required fields and returns a
// ValidationError naming the first one missing. Doctypes without an entry
// pass through.
func (v *ValidationUtil) ValidateRequired(doctype model.Doctype, record model.Record) error {
	for _, field := range requiredFields[doctype] {
		if missing(record, field) {
			return &gateway_errors.ValidationError{Field: field}
		}
	}
	if missing(record, "organizationId") {
		return &gateway_errors.ValidationError{
			Field:   "organizationId",
			Message: "organization is missing, please log in again",
		}
	}
	return nil
}

// StampCreate fills the session-derived fields a new record must carry
// before it goes upstream. Stamping happens server-side so the client can
// never forge ownership.
func (v *ValidationUtil) StampCreate(doctype model.Doctype, s model.Session, record model.Record) model.Record {
	out := make(model.Record, len(record)+6)
	for k, val := range record {
		out[k] = val
	}

	if missing(out, "organizationId") {
		out["organizationId"] = s.OrganizationID
	}

	switch doctype {
	case model.DoctypeComplaint:
		// Ownership is stamped at creation: employee accounts by id,
		// admin accounts (no employee id) by account username.
		if s.EmployeeID != "" {
			if missing(out, "employeeId") {
				out["employeeId"] = s.EmployeeID
				out["employeeName"] = s.UserName
			}
		} else if s.UserName != "" && missing(out, "employeeId") {
			out["username"] = s.UserName
			out["employeeName"] = s.UserName
		}
		if missing(out, "department") {
			if s.DepartmentName != "" {
				out["department"] = s.DepartmentName
			} else {
				out["department"] = "General"
			}
		}
		if missing(out, "departmentId") {
			if s.DepartmentID != "" {
				out["departmentId"] = s.DepartmentID
			} else {
				// Dept admins sometimes have no department id of their
				// own; the org id keeps the record addressable.
				out["departmentId"] = s.OrganizationID
			}
		}

	case model.DoctypeLeaveRequest:
		if missing(out, "employeeId") {
			out["employeeId"] = s.EmployeeID
		}
		if missing(out, "employeeName") {
			out["employeeName"] = s.UserName
		}
		if missing(out, "department") && s.DepartmentName != "" {
			out["department"] = s.DepartmentName
		}
		out["status"] = model.LeavePendingDepartment

	case model.DoctypeHoliday:
		if missing(out, "department") && s.DepartmentName != "" {
			out["department"] = s.DepartmentName
		}
		if missing(out, "departmentId") && s.DepartmentID != "" {
			out["departmentId"] = s.DepartmentID
		}

	case model.DoctypeAnnouncement:
		// "All" and "None" target no single department; drop the id so
		// the backend treats it as organization-wide.
		if target, _ := out["targetDepartment"].(string); target == "All" || target == "None" {
			out["departmentId"] = nil
		} else if missing(out, "departmentId") && s.DepartmentID != "" {
			out["departmentId"] = s.DepartmentID
		}

	case model.DoctypeStudent:
		if missing(out, "verificationStatus") {
			out["verificationStatus"] = model.VerificationPending
			out["isActive"] = false
		}
		if s.Role == model.RoleStudyCenter {
			if missing(out, "studyCenterId") {
				out["studyCenterId"] = s.StudyCenterID
			}
			if missing(out, "studyCenter") {
				out["studyCenter"] = s.StudyCenterName
			}
		}

	case model.DoctypeTask:
		if missing(out, "assignedBy") && s.UserID != "" {
			out["assignedBy"] = s.UserID
			out["assignedByName"] = s.UserName
		}
		if missing(out, "status") {
			out["status"] = model.TaskStatusOpen
		}
	}

	return out
}
