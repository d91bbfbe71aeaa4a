package workflow_test

import (
	"testing"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/workflow"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaskSave_Employee(t *testing.T) {
	employee := model.Session{Role: model.RoleEmployee, EmployeeID: "emp1"}
	existing := model.Task{
		ID: "t1", Subject: "Quarterly report", Status: model.TaskStatusWorking,
		AssignedTo: "emp1", AssignedBy: "mgr1", ExpEndDate: "2026-09-30",
	}

	t.Run("CompletedBecomesPendingReview", func(t *testing.T) {
		incoming := existing
		incoming.Status = model.TaskStatusCompleted
		incoming.CompletionEvidence = "https://files/report.pdf"

		out, err := workflow.NormalizeTaskSave(employee, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusPendingReview, out.Status)
		assert.Equal(t, model.VerificationPending, out.VerificationStatus)
	})

	t.Run("ReviewWithoutEvidenceBlocked", func(t *testing.T) {
		incoming := existing
		incoming.Status = model.TaskStatusCompleted

		_, err := workflow.NormalizeTaskSave(employee, incoming, existing)
		assert.ErrorIs(t, err, gateway_errors.ErrEvidenceRequired)
	})

	t.Run("AdminFieldsPinned", func(t *testing.T) {
		incoming := existing
		incoming.Subject = "Changed subject"
		incoming.AssignedTo = "emp99"
		incoming.AdminRemarks = "self-approved"
		incoming.VerificationStatus = model.VerificationApproved
		incoming.Description = "made progress"

		out, err := workflow.NormalizeTaskSave(employee, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, existing.Subject, out.Subject)
		assert.Equal(t, existing.AssignedTo, out.AssignedTo)
		assert.Equal(t, existing.AdminRemarks, out.AdminRemarks)
		assert.Equal(t, existing.VerificationStatus, out.VerificationStatus)
		assert.Equal(t, "made progress", out.Description)
	})

	t.Run("WorkingSavePassesThrough", func(t *testing.T) {
		incoming := existing
		incoming.Status = model.TaskStatusWorking
		incoming.Description = "halfway there"

		out, err := workflow.NormalizeTaskSave(employee, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusWorking, out.Status)
	})
}

func TestNormalizeTaskSave_AdminVerification(t *testing.T) {
	admin := model.Session{Role: model.RoleDepartmentAdmin}
	existing := model.Task{
		ID: "t1", Status: model.TaskStatusPendingReview,
		VerificationStatus: model.VerificationPending,
		CompletionEvidence: "https://files/report.pdf",
	}

	t.Run("ApprovedCompletes", func(t *testing.T) {
		incoming := existing
		incoming.VerificationStatus = model.VerificationApproved

		out, err := workflow.NormalizeTaskSave(admin, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusCompleted, out.Status)
	})

	t.Run("RejectedReopensAsWorking", func(t *testing.T) {
		incoming := existing
		incoming.VerificationStatus = model.VerificationRejected
		incoming.AdminRemarks = "numbers do not add up"

		out, err := workflow.NormalizeTaskSave(admin, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusWorking, out.Status)
		assert.Equal(t, "numbers do not add up", out.AdminRemarks)
	})

	t.Run("ApprovedResaveStaysCompleted", func(t *testing.T) {
		// Re-saving an approved task with a stale status must not let
		// status and verificationStatus drift apart.
		approved := existing
		approved.Status = model.TaskStatusCompleted
		approved.VerificationStatus = model.VerificationApproved

		incoming := approved
		incoming.Status = model.TaskStatusOpen

		out, err := workflow.NormalizeTaskSave(admin, incoming, approved)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusCompleted, out.Status)
		assert.Equal(t, model.VerificationApproved, out.VerificationStatus)
	})

	t.Run("RequestChangesAllowsStatusEdit", func(t *testing.T) {
		incoming := existing
		incoming.VerificationStatus = model.VerificationRequestChanges
		incoming.Status = model.TaskStatusWorking

		out, err := workflow.NormalizeTaskSave(admin, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusWorking, out.Status)
		assert.Equal(t, model.VerificationRequestChanges, out.VerificationStatus)
	})

	t.Run("RequestChangesKeepsStatus", func(t *testing.T) {
		incoming := existing
		incoming.VerificationStatus = model.VerificationRequestChanges

		out, err := workflow.NormalizeTaskSave(admin, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusPendingReview, out.Status)
		assert.Equal(t, model.VerificationRequestChanges, out.VerificationStatus)
	})

	t.Run("NoDecisionNoRewrite", func(t *testing.T) {
		incoming := existing
		incoming.Description = "admin note"

		out, err := workflow.NormalizeTaskSave(admin, incoming, existing)
		assert.NoError(t, err)
		assert.Equal(t, existing.Status, out.Status)
	})
}
