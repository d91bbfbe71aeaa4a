package workflow

import (
	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/model"
)

// Decision is an approval verdict on a pending leave request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Roles that may act on the department review stage. Any management role
// can run a department, so the set is broad; the HR stage is the narrow
// one.
var deptApproverRoles = []model.Role{
	model.RoleDepartmentAdmin, model.RoleHeadOfDepartment, model.RoleOrganizationAdmin,
	model.RoleOperations, model.RoleHR, model.RoleHumanResources, model.RoleSuperAdmin,
	model.RoleFinance, model.RoleInventory, model.RoleCRM, model.RoleSupport, model.RoleAssets,
}

var hrApproverRoles = []model.Role{
	model.RoleHR, model.RoleHumanResources, model.RoleSuperAdmin,
}

func roleIn(r model.Role, set []model.Role) bool {
	for _, candidate := range set {
		if candidate == r {
			return true
		}
	}
	return false
}

func canActOnDepartmentStage(s model.Session) bool {
	return roleIn(s.Role, deptApproverRoles)
}

func canActOnHRStage(s model.Session) bool {
	if roleIn(s.Role, hrApproverRoles) {
		return true
	}
	// The HR department's own admin carries HR authority even though the
	// account role is DepartmentAdmin.
	return s.Role == model.RoleDepartmentAdmin && s.InHRDepartment()
}

// TransitionLeave applies an approval decision to a leave request and
// returns the updated record. Self-approval is rejected before any role
// check: an approver never acts on their own request regardless of
// authority. Approved and Rejected are terminal.
func TransitionLeave(s model.Session, lr model.LeaveRequest, decision Decision, remarks string) (model.LeaveRequest, error) {
	if s.EmployeeID != "" && s.EmployeeID == lr.EmployeeID {
		return model.LeaveRequest{}, gateway_errors.ErrSelfApproval
	}

	switch lr.Status {
	case model.LeavePendingDepartment:
		if !canActOnDepartmentStage(s) {
			return model.LeaveRequest{}, gateway_errors.ErrForbidden
		}
		if decision == DecisionApprove {
			lr.Status = model.LeavePendingHR
		} else {
			lr.Status = model.LeaveRejected
		}
		lr.DeptAdminRemarks = remarks
		return lr, nil

	case model.LeavePendingHR:
		if !canActOnHRStage(s) {
			return model.LeaveRequest{}, gateway_errors.ErrForbidden
		}
		if decision == DecisionApprove {
			lr.Status = model.LeaveApproved
		} else {
			lr.Status = model.LeaveRejected
		}
		lr.HRRemarks = remarks
		return lr, nil

	default:
		return model.LeaveRequest{}, gateway_errors.ErrInvalidTransition
	}
}
