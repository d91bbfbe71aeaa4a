package policy_test

import (
	"testing"

	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/stretchr/testify/assert"
)

func TestFieldView_StudyCenter(t *testing.T) {
	s := model.Session{Role: model.RoleStudyCenter, StudyCenterID: "c1"}
	rec := model.Record{"_id": "s1", "studyCenter": "North Campus"}

	assert.Equal(t, policy.FieldHidden, policy.FieldView(model.DoctypeStudent, "studyCenter", s, rec))
	assert.Equal(t, policy.FieldEditable, policy.FieldView(model.DoctypeStudent, "firstName", s, rec))

	t.Run("OtherRolesSeeTheField", func(t *testing.T) {
		ops := model.Session{Role: model.RoleOperations}
		assert.Equal(t, policy.FieldEditable, policy.FieldView(model.DoctypeStudent, "studyCenter", ops, rec))
	})
}

func TestFieldView_ComplaintHRReadOnly(t *testing.T) {
	hr := model.Session{Role: model.RoleHR}
	rec := model.Record{"_id": "c1", "subject": "Broken chair"}

	for _, field := range []string{"subject", "description", "status"} {
		assert.Equal(t, policy.FieldReadOnly, policy.FieldView(model.DoctypeComplaint, field, hr, rec))
	}

	owner := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
	assert.Equal(t, policy.FieldEditable, policy.FieldView(model.DoctypeComplaint, "description", owner, rec))
}

func TestFieldView_LeaveRequest(t *testing.T) {
	pending := model.Record{"_id": "l1", "employeeId": "emp1", "status": model.LeavePendingDepartment}
	advanced := model.Record{"_id": "l2", "employeeId": "emp1", "status": model.LeavePendingHR}

	t.Run("AdminRolesReadOnly", func(t *testing.T) {
		for _, role := range []model.Role{
			model.RoleDepartmentAdmin, model.RoleHR, model.RoleOperations,
			model.RoleSuperAdmin, model.RoleHeadOfDepartment,
		} {
			s := model.Session{Role: role, EmployeeID: "emp1"}
			assert.Equal(t, policy.FieldReadOnly,
				policy.FieldView(model.DoctypeLeaveRequest, "reason", s, pending), "role %s", role)
		}
	})

	t.Run("OwnerEditableWhilePending", func(t *testing.T) {
		s := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
		assert.Equal(t, policy.FieldEditable, policy.FieldView(model.DoctypeLeaveRequest, "reason", s, pending))
	})

	t.Run("FrozenAfterDepartmentReview", func(t *testing.T) {
		s := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
		assert.Equal(t, policy.FieldReadOnly, policy.FieldView(model.DoctypeLeaveRequest, "reason", s, advanced))
	})

	t.Run("SomeoneElsesRequestReadOnly", func(t *testing.T) {
		s := model.Session{Role: model.RoleEmployee, EmployeeID: "emp2"}
		assert.Equal(t, policy.FieldReadOnly, policy.FieldView(model.DoctypeLeaveRequest, "reason", s, pending))
	})
}

func TestFieldView_Task(t *testing.T) {
	mine := model.Record{"_id": "t1", "assignedTo": "emp1", "status": model.TaskStatusWorking}
	theirs := model.Record{"_id": "t2", "assignedTo": "emp2", "status": model.TaskStatusWorking}

	t.Run("AdminsEditEverything", func(t *testing.T) {
		s := model.Session{Role: model.RoleDepartmentAdmin}
		assert.Equal(t, policy.FieldEditable, policy.FieldView(model.DoctypeTask, "verificationStatus", s, mine))
	})

	t.Run("AssigneeEditsWorkFields", func(t *testing.T) {
		s := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
		for _, field := range []string{"status", "description", "completionEvidence", "priority"} {
			assert.Equal(t, policy.FieldEditable, policy.FieldView(model.DoctypeTask, field, s, mine), field)
		}
	})

	t.Run("AssigneeBlockedFromAdminFields", func(t *testing.T) {
		s := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
		for _, field := range []string{
			"verificationStatus", "adminRemarks", "assignedTo", "assignedBy",
			"subject", "exp_end_date", "assignedToName", "assignedByName",
		} {
			assert.Equal(t, policy.FieldReadOnly, policy.FieldView(model.DoctypeTask, field, s, mine), field)
		}
	})

	t.Run("SomeoneElsesTaskReadOnly", func(t *testing.T) {
		s := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
		assert.Equal(t, policy.FieldReadOnly, policy.FieldView(model.DoctypeTask, "status", s, theirs))
	})
}
