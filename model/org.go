package model

// Panel types: a department's dashboard category, controlling which
// dashboard variant and default feature bundle it receives.
const (
	PanelFinance    = "Finance"
	PanelOperations = "Operations"
	PanelHR         = "HR"
	PanelEducation  = "Education"
	PanelSales      = "Sales"
)

// Department as served by the backend. Features is the set of flags the
// organization admin assigned when customizing the department panel; it is
// cached into the session's feature list at login.
type Department struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	OrganizationID string   `json:"organizationId"`
	PanelType      string   `json:"panelType,omitempty"`
	Features       []string `json:"features,omitempty"`
	Designations   []string `json:"designations,omitempty"`
}
