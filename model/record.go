package model

import "time"

// Doctype is the backend resource type name used as the REST path segment.
type Doctype string

const (
	DoctypeEmployee         Doctype = "employee"
	DoctypeStudent          Doctype = "student"
	DoctypeStudentApplicant Doctype = "studentapplicant"
	DoctypeInternalMark     Doctype = "internalmark"
	DoctypeJobOpening       Doctype = "jobopening"
	DoctypeComplaint        Doctype = "complaint"
	DoctypeAnnouncement     Doctype = "announcement"
	DoctypeHoliday          Doctype = "holiday"
	DoctypeTask             Doctype = "task"
	DoctypeLeaveRequest     Doctype = "leaverequest"
	DoctypePerformance      Doctype = "performancereview"
)

// Record is the generic business entity shape returned by the backend.
// Doctypes with decision logic get typed views (Task, LeaveRequest,
// Complaint, Announcement); everything else flows through as-is.
type Record map[string]interface{}

func (r Record) str(key string) string {
	v, ok := r[key].(string)
	if !ok {
		return ""
	}
	return v
}

// ID returns the record identifier.
func (r Record) ID() string { return r.str("_id") }

// OrganizationID returns the owning organization, if stamped.
func (r Record) OrganizationID() string { return r.str("organizationId") }

// Task status values. An employee may only reach Completed through
// Pending Review.
const (
	TaskStatusOpen          = "Open"
	TaskStatusWorking       = "Working"
	TaskStatusPendingReview = "Pending Review"
	TaskStatusCompleted     = "Completed"
	TaskStatusCancelled     = "Cancelled"
)

// Task verification status values, layered on top of the primary status.
const (
	VerificationPending        = "Pending"
	VerificationApproved       = "Approved"
	VerificationRejected       = "Rejected"
	VerificationRequestChanges = "Request Changes"
)

// Task is the typed view of a task record used by save normalization and
// field access decisions.
type Task struct {
	ID                 string `json:"_id,omitempty"`
	Subject            string `json:"subject"`
	Description        string `json:"description,omitempty"`
	Status             string `json:"status"`
	VerificationStatus string `json:"verificationStatus,omitempty"`
	Priority           string `json:"priority,omitempty"`
	AssignedTo         string `json:"assignedTo,omitempty"`
	AssignedToName     string `json:"assignedToName,omitempty"`
	AssignedBy         string `json:"assignedBy,omitempty"`
	AssignedByName     string `json:"assignedByName,omitempty"`
	ExpEndDate         string `json:"exp_end_date,omitempty"`
	CompletionEvidence string `json:"completionEvidence,omitempty"`
	AdminRemarks       string `json:"adminRemarks,omitempty"`
	OrganizationID     string `json:"organizationId,omitempty"`
}

// TaskFromRecord extracts the workflow view of a raw task record.
func TaskFromRecord(r Record) Task {
	return Task{
		ID:                 r.ID(),
		Subject:            r.str("subject"),
		Description:        r.str("description"),
		Status:             r.str("status"),
		VerificationStatus: r.str("verificationStatus"),
		Priority:           r.str("priority"),
		AssignedTo:         r.str("assignedTo"),
		AssignedToName:     r.str("assignedToName"),
		AssignedBy:         r.str("assignedBy"),
		AssignedByName:     r.str("assignedByName"),
		ExpEndDate:         r.str("exp_end_date"),
		CompletionEvidence: r.str("completionEvidence"),
		AdminRemarks:       r.str("adminRemarks"),
		OrganizationID:     r.OrganizationID(),
	}
}

// Apply writes the workflow-controlled fields back onto a raw record,
// leaving fields the workflow does not own untouched.
func (t Task) Apply(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	out["subject"] = t.Subject
	out["description"] = t.Description
	out["status"] = t.Status
	out["verificationStatus"] = t.VerificationStatus
	out["priority"] = t.Priority
	out["assignedTo"] = t.AssignedTo
	out["assignedToName"] = t.AssignedToName
	out["assignedBy"] = t.AssignedBy
	out["assignedByName"] = t.AssignedByName
	out["exp_end_date"] = t.ExpEndDate
	out["completionEvidence"] = t.CompletionEvidence
	out["adminRemarks"] = t.AdminRemarks
	return out
}

// Leave request workflow states. Approved and Rejected are terminal.
const (
	LeavePendingDepartment = "Pending Department"
	LeavePendingHR         = "Pending HR"
	LeaveApproved          = "Approved"
	LeaveRejected          = "Rejected"
)

// LeaveRequest is the typed view of a leave request record.
type LeaveRequest struct {
	ID               string `json:"_id,omitempty"`
	EmployeeID       string `json:"employeeId"`
	EmployeeName     string `json:"employeeName,omitempty"`
	Status           string `json:"status"`
	Reason           string `json:"reason,omitempty"`
	FromDate         string `json:"fromDate,omitempty"`
	ToDate           string `json:"toDate,omitempty"`
	DeptAdminRemarks string `json:"deptAdminRemarks,omitempty"`
	HRRemarks        string `json:"hrRemarks,omitempty"`
	OrganizationID   string `json:"organizationId,omitempty"`
}

// LeaveRequestFromRecord extracts the workflow view of a raw leave
// request record.
func LeaveRequestFromRecord(r Record) LeaveRequest {
	return LeaveRequest{
		ID:               r.ID(),
		EmployeeID:       r.str("employeeId"),
		EmployeeName:     r.str("employeeName"),
		Status:           r.str("status"),
		Reason:           r.str("reason"),
		FromDate:         r.str("fromDate"),
		ToDate:           r.str("toDate"),
		DeptAdminRemarks: r.str("deptAdminRemarks"),
		HRRemarks:        r.str("hrRemarks"),
		OrganizationID:   r.OrganizationID(),
	}
}

// Apply writes the workflow-controlled fields back onto a raw record.
func (l LeaveRequest) Apply(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	out["status"] = l.Status
	out["deptAdminRemarks"] = l.DeptAdminRemarks
	out["hrRemarks"] = l.HRRemarks
	return out
}

// Complaint ownership: a record is owned by an employee id, or by a
// username for accounts without one (department admins).
type Complaint struct {
	ID           string `json:"_id,omitempty"`
	Subject      string `json:"subject"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	Username     string `json:"username,omitempty"`
}

// ComplaintFromRecord extracts the ownership view of a raw record.
func ComplaintFromRecord(r Record) Complaint {
	return Complaint{
		ID:           r.ID(),
		Subject:      r.str("subject"),
		Status:       r.str("status"),
		EmployeeID:   r.str("employeeId"),
		EmployeeName: r.str("employeeName"),
		Username:     r.str("username"),
	}
}

// Announcement is the typed view used by the date-window post filter.
type Announcement struct {
	ID         string `json:"_id,omitempty"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
}

// AnnouncementFromRecord extracts the filter view of a raw record.
func AnnouncementFromRecord(r Record) Announcement {
	return Announcement{
		ID:         r.ID(),
		Title:      r.str("title"),
		Department: r.str("department"),
		StartDate:  r.str("startDate"),
		EndDate:    r.str("endDate"),
	}
}

// ActiveAt reports whether the announcement is inside its display window.
// Announcements without both dates set are always active (legacy records).
func (a Announcement) ActiveAt(now time.Time) bool {
	if a.StartDate == "" || a.EndDate == "" {
		return true
	}
	start, err := time.Parse(time.RFC3339, a.StartDate)
	if err != nil {
		if start, err = time.Parse("2006-01-02", a.StartDate); err != nil {
			return true
		}
	}
	end, err := time.Parse(time.RFC3339, a.EndDate)
	if err != nil {
		if end, err = time.Parse("2006-01-02", a.EndDate); err != nil {
			return true
		}
		// Date-only end bounds are inclusive of the whole day.
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	return !now.Before(start) && !now.After(end)
}
