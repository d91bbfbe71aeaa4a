// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AccessLog records one access decision: who tried to do what, against
// which record, and how the gateway ruled.
type AccessLog struct {
	Timestamp      time.Time       `json:"timestamp"`
	UserID         string          `json:"user_id"`
	Role           string          `json:"role"`
	OrganizationID string          `json:"organization_id"`
	Action         string          `json:"action"`
	Doctype        string          `json:"doctype,omitempty"`
	ResourceID     string          `json:"resource_id,omitempty"`
	Decision       string          `json:"decision"`
	Reason         string          `json:"reason,omitempty"`
	Details        json.RawMessage `json:"details,omitempty"`
}
