package policy

import "github.com/orgdesk/orgdesk/model"

// FieldAccess is the computed view of a single form field for a session.
type FieldAccess int

const (
	FieldEditable FieldAccess = iota
	FieldReadOnly
	FieldHidden
)

func (a FieldAccess) String() string {
	switch a {
	case FieldEditable:
		return "editable"
	case FieldReadOnly:
		return "read_only"
	case FieldHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Roles that interact with leave requests only through the approval
// workflow; every form field is read-only for them.
var leaveAdminRoles = []model.Role{
	model.RoleDepartmentAdmin, model.RoleHR, model.RoleOperations, model.RoleFinance,
	model.RoleSuperAdmin, model.RoleOrganizationAdmin, model.RoleHumanResources,
	model.RoleHeadOfDepartment,
}

// Fields an employee may never edit on their own task: admin controls and
// assignment details.
var taskAdminFields = map[string]bool{
	"verificationStatus": true,
	"adminRemarks":       true,
	"assignedTo":         true,
	"assignedBy":         true,
	"subject":            true,
	"exp_end_date":       true,
	"assignedToName":     true,
	"assignedByName":     true,
}

// FieldView computes whether a field is hidden, read-only, or editable for
// the session viewing the given record.
func FieldView(doctype model.Doctype, field string, s model.Session, rec model.Record) FieldAccess {
	// A study center cannot reassign itself.
	if field == "studyCenter" && s.Role == model.RoleStudyCenter {
		return FieldHidden
	}

	// HR reviews complaints; it does not edit them.
	if doctype == model.DoctypeComplaint && s.Role == model.RoleHR {
		return FieldReadOnly
	}

	switch doctype {
	case model.DoctypeLeaveRequest:
		return leaveFieldView(s, rec)
	case model.DoctypeTask:
		return taskFieldView(field, s, rec)
	}

	return FieldEditable
}

func leaveFieldView(s model.Session, rec model.Record) FieldAccess {
	for _, r := range leaveAdminRoles {
		if s.Role == r {
			return FieldReadOnly
		}
	}
	if s.Role == model.RoleEmployee {
		mine := recordString(rec, "employeeId") == s.EmployeeID && s.EmployeeID != ""
		// Once the request advances past department review, the
		// employee's copy freezes.
		if !mine || recordString(rec, "status") != model.LeavePendingDepartment {
			return FieldReadOnly
		}
	}
	return FieldEditable
}

func taskFieldView(field string, s model.Session, rec model.Record) FieldAccess {
	if s.Role != model.RoleEmployee {
		return FieldEditable
	}
	assignedToMe := s.EmployeeID != "" && recordString(rec, "assignedTo") == s.EmployeeID
	if !assignedToMe {
		return FieldReadOnly
	}
	if taskAdminFields[field] {
		return FieldReadOnly
	}
	// status, description, completionEvidence, priority stay editable.
	return FieldEditable
}

func recordString(rec model.Record, key string) string {
	v, _ := rec[key].(string)
	return v
}
