// Package workflow implements the save-time state machines layered on top
// of the generic record pipeline: task completion review and leave request
// approval.
package workflow

import (
	gateway_errors "github.com/orgdesk/orgdesk/errors"
	"github.com/orgdesk/orgdesk/model"
)

// NormalizeTaskSave rewrites a task save according to who is saving it.
// Employees never complete a task directly: selecting Completed routes the
// task into Pending Review with verification reset to Pending, and a
// review submission without completion evidence is rejected before any
// network call. Admin saves translate the verification decision back into
// the primary status.
//
// The returned task is what goes to the backend; the input is not
// modified.
func NormalizeTaskSave(s model.Session, incoming, existing model.Task) (model.Task, error) {
	out := incoming

	if s.Role == model.RoleEmployee {
		// Admin-controlled fields are pinned to their stored values no
		// matter what the client sent.
		out.Subject = existing.Subject
		out.AssignedTo = existing.AssignedTo
		out.AssignedToName = existing.AssignedToName
		out.AssignedBy = existing.AssignedBy
		out.AssignedByName = existing.AssignedByName
		out.ExpEndDate = existing.ExpEndDate
		out.AdminRemarks = existing.AdminRemarks
		out.VerificationStatus = existing.VerificationStatus

		if out.Status == model.TaskStatusCompleted {
			out.Status = model.TaskStatusPendingReview
			out.VerificationStatus = model.VerificationPending
		}

		if out.Status == model.TaskStatusPendingReview && out.CompletionEvidence == "" {
			return model.Task{}, gateway_errors.ErrEvidenceRequired
		}

		return out, nil
	}

	// Admin save: the verification decision on the payload always drives
	// the status, keeping the two fields in lockstep even on a re-save.
	// Request Changes leaves the payload's status alone.
	switch out.VerificationStatus {
	case model.VerificationApproved:
		out.Status = model.TaskStatusCompleted
	case model.VerificationRejected:
		out.Status = model.TaskStatusWorking
	}

	return out, nil
}
