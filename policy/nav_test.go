package policy_test

import (
	"testing"

	"github.com/orgdesk/orgdesk/model"
	"github.com/orgdesk/orgdesk/policy"
	"github.com/stretchr/testify/assert"
)

func labels(items []model.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestVisibleItems_EmployeeSandbox(t *testing.T) {
	s := model.Session{
		Role:           model.RoleEmployee,
		OrganizationID: "org1",
		DepartmentID:   "dept1",
		Features:       []string{"HR Dashboard", "Employee List", "Post Vacancy"},
	}
	items := policy.VisibleItems(policy.Catalog(s), s)

	assert.Equal(t, []string{"Staff Portal", "My Leave Requests", "Notifications"}, labels(items))

	t.Run("FeaturesDoNotWiden", func(t *testing.T) {
		bare := policy.VisibleItems(policy.Catalog(s), s.WithFeatures(nil))
		assert.Equal(t, labels(items), labels(bare))
	})

	t.Run("PortalTargetsEmployeeDashboard", func(t *testing.T) {
		assert.Equal(t, "/employee-dashboard", items[0].Href)
		assert.Equal(t, "/leaverequest", items[1].Href)
	})
}

func TestVisibleItems_DepartmentAdmin(t *testing.T) {
	s := model.Session{
		Role:           model.RoleDepartmentAdmin,
		OrganizationID: "org1",
		DepartmentID:   "dept1",
		DepartmentName: "Engineering",
	}

	t.Run("CoreItemsWithoutFeatures", func(t *testing.T) {
		items := policy.VisibleItems(policy.Catalog(s), s)
		got := labels(items)
		assert.Contains(t, got, "Task Management")
		assert.Contains(t, got, "Leave Requests")
		assert.Contains(t, got, "Department Panel")
		assert.NotContains(t, got, "Employee List")
	})

	t.Run("FeatureUnlocksItem", func(t *testing.T) {
		// A department admin's panel is feature-driven: the grant opens
		// the item even though its role set names HR and Operations.
		granted := s.WithFeatures([]string{"Holidays"})
		got := labels(policy.VisibleItems(policy.Catalog(granted), granted))
		assert.Contains(t, got, "Holidays")
		assert.NotContains(t, got, "Employee List")
	})

	t.Run("DepartmentPanelHref", func(t *testing.T) {
		items := policy.VisibleItems(policy.Catalog(s), s)
		for _, item := range items {
			if item.Label == "Department Panel" {
				assert.Equal(t, "/department/dept1", item.Href)
				return
			}
		}
		t.Fatal("Department Panel not visible")
	})
}

func TestVisibleItems_FeatureGate(t *testing.T) {
	hr := model.Session{Role: model.RoleHR, OrganizationID: "org1"}

	t.Run("NoFeaturesShowsEverythingRoleAllows", func(t *testing.T) {
		got := labels(policy.VisibleItems(policy.Catalog(hr), hr))
		assert.Contains(t, got, "HR Workspace")
		assert.Contains(t, got, "Employee List")
		assert.Contains(t, got, "Complaints")
	})

	t.Run("CustomizedDepartmentHidesUngranted", func(t *testing.T) {
		s := hr.WithFeatures([]string{"HR Dashboard"})
		got := labels(policy.VisibleItems(policy.Catalog(s), s))
		assert.Contains(t, got, "HR Workspace")
		assert.NotContains(t, got, "Employee List")
		// Featureless entries survive the gate.
		assert.Contains(t, got, "Dashboard")
		assert.Contains(t, got, "Leave Requests")
	})

	t.Run("StaffPortalBundle", func(t *testing.T) {
		s := hr.WithFeatures([]string{"Staff Portal"})
		got := labels(policy.VisibleItems(policy.Catalog(s), s))
		assert.Contains(t, got, "Employee List")
		assert.Contains(t, got, "Holidays")
		assert.Contains(t, got, "Complaints")
		assert.Contains(t, got, "Attendance")
		// Outside the bundle.
		assert.NotContains(t, got, "Post Vacancy")
		assert.NotContains(t, got, "HR Workspace")
	})
}

func TestVisibleItems_DedupeByLabel(t *testing.T) {
	s := model.Session{Role: model.RoleHR, OrganizationID: "org1"}
	items := []model.NavItem{
		{Label: "Tasks", Href: "/task"},
		{Label: "tasks", Href: "/task-duplicate"},
		{Label: "Holidays", Href: "/holiday"},
	}
	got := policy.VisibleItems(items, s)
	assert.Equal(t, []string{"Tasks", "Holidays"}, labels(got))
	assert.Equal(t, "/task", got[0].Href)
}

func TestVisibleItems_Idempotent(t *testing.T) {
	sessions := []model.Session{
		{Role: model.RoleEmployee, OrganizationID: "org1"},
		{Role: model.RoleHR, OrganizationID: "org1"},
		{Role: model.RoleDepartmentAdmin, OrganizationID: "org1", DepartmentID: "dept1",
			Features: []string{"Staff Portal"}},
		{Role: model.RoleStudent, OrganizationID: "org1"},
	}
	for _, s := range sessions {
		once := policy.VisibleItems(policy.Catalog(s), s)
		twice := policy.VisibleItems(once, s)
		assert.Equal(t, labels(once), labels(twice), "role %s", s.Role)
	}
}

func TestCatalog_DashboardTarget(t *testing.T) {
	cases := []struct {
		name string
		s    model.Session
		want string
	}{
		{"Employee", model.Session{Role: model.RoleEmployee}, "/employee-dashboard"},
		{"Operations", model.Session{Role: model.RoleOperations}, "/ops-dashboard"},
		{"EducationPanel", model.Session{Role: model.RoleDepartmentAdmin,
			DepartmentPanelType: model.PanelEducation}, "/ops-dashboard"},
		{"HR", model.Session{Role: model.RoleHR}, "/hr"},
		{"FinancePanel", model.Session{Role: model.RoleDepartmentAdmin,
			DepartmentPanelType: model.PanelFinance}, "/finance"},
		{"Default", model.Session{Role: model.RoleSupport}, "/employee-dashboard"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := policy.Catalog(tc.s)
			assert.Equal(t, tc.want, items[0].Href)
		})
	}
}
