package policy

import (
	"strings"

	"github.com/orgdesk/orgdesk/model"
)

// dashboardHref resolves the main dashboard target for a session: the
// role decides first, then the department's panel type.
func dashboardHref(s model.Session) string {
	switch {
	case s.Role == model.RoleEmployee:
		return "/employee-dashboard"
	case s.Role == model.RoleOperations,
		s.DepartmentPanelType == model.PanelOperations,
		s.DepartmentPanelType == model.PanelEducation:
		return "/ops-dashboard"
	case s.Role == model.RoleHR, s.DepartmentPanelType == model.PanelHR:
		return "/hr"
	case s.Role == model.RoleFinance, s.DepartmentPanelType == model.PanelFinance:
		return "/finance"
	default:
		return "/employee-dashboard"
	}
}

func studentsHref(s model.Session) string {
	if s.Role == model.RoleFinance || s.DepartmentPanelType == model.PanelFinance ||
		strings.Contains(string(s.Role), "Admin") {
		return "/finance-students"
	}
	return "/student"
}

// Catalog builds the full navigation catalog for a session. Labels and
// targets vary with the session context; the set of entries does not.
func Catalog(s model.Session) []model.NavItem {
	dashboardLabel := "Dashboard"
	if s.Role == model.RoleEmployee {
		dashboardLabel = "Staff Portal"
	}

	return []model.NavItem{
		// Core dashboard entries, generally always visible for the role.
		{Icon: "layout-dashboard", Label: dashboardLabel, Href: dashboardHref(s), Roles: []model.Role{
			model.RoleEmployee, model.RoleDepartmentAdmin, model.RoleHR, model.RoleOperations,
			model.RoleFinance, model.RoleInventory, model.RoleCRM, model.RoleProjects,
			model.RoleSupport, model.RoleAssets,
		}},
		{Icon: "user-check", Label: "Staff Portal", Href: "/employee-dashboard", Roles: []model.Role{
			model.RoleHR, model.RoleOperations, model.RoleFinance, model.RoleDepartmentAdmin,
		}},
		{Icon: "layout-dashboard", Label: "Student Portal", Href: "/student-dashboard", Roles: []model.Role{model.RoleStudent}},
		{Icon: "clock", Label: "Exams", Href: "/student/exams", Roles: []model.Role{model.RoleStudent}},
		{Icon: "award", Label: "Results", Href: "/student/results", Roles: []model.Role{model.RoleStudent}},
		{Icon: "book-open", Label: "My Courses", Href: "/student/courses", Roles: []model.Role{model.RoleStudent}},

		{Icon: "layout-dashboard", Label: "Org Dashboard", Href: "/organization-dashboard", Roles: []model.Role{model.RoleOrganizationAdmin}},
		{Icon: "layout-dashboard", Label: "Center Dashboard", Href: "/center-dashboard", Roles: []model.Role{model.RoleStudyCenter}},
		{Icon: "settings", Label: "Customize Departments", Href: "/organization/departments", Roles: []model.Role{model.RoleOrganizationAdmin}},
		{Icon: "layout-dashboard", Label: "Department Panel", Href: "/department/" + s.DepartmentID, Roles: []model.Role{model.RoleDepartmentAdmin}},
		{Icon: "list-todo", Label: "Task Management", Href: "/task", Roles: []model.Role{
			model.RoleDepartmentAdmin, model.RoleHR, model.RoleOperations, model.RoleFinance,
		}},

		// HR and employee management
		{Icon: "users", Label: "HR Workspace", Href: "/hr", Roles: []model.Role{model.RoleHR}, Feature: "HR Dashboard"},
		{Icon: "clipboard-list", Label: "Employee List", Href: "/employee", Roles: []model.Role{model.RoleHR}, Feature: "Employee List"},
		{Icon: "user-check", Label: "Add Employee", Href: "/employee/new", Roles: []model.Role{model.RoleHR}, Feature: "Add Employee"},
		{Icon: "building-2", Label: "Post Vacancy", Href: "/jobopening", Roles: []model.Role{model.RoleHR}, Feature: "Post Vacancy"},
		{Icon: "arrow-left-right", Label: "Employee Transfer", Href: "/employee-transfer", Roles: []model.Role{model.RoleHR}, Feature: "Employee Transfer"},
		{Icon: "users", Label: "Employee Lifecycle", Href: "/employee-lifecycle", Roles: []model.Role{model.RoleHR}, Feature: "Employee Lifecycle"},

		{Icon: "graduation-cap", Label: "STUDENTS", Href: studentsHref(s), Roles: []model.Role{
			model.RoleHR, model.RoleOperations, model.RoleStudyCenter, model.RoleFinance, model.RoleSuperAdmin,
		}, Feature: "STUDENTS"},
		{Icon: "megaphone", Label: "Complaints", Href: "/complaint", Roles: []model.Role{model.RoleHR}, Feature: "Employee Complaints"},
		{Icon: "school", Label: "Holidays", Href: "/holiday", Roles: []model.Role{model.RoleHR, model.RoleOperations}, Feature: "Holidays"},
		{Icon: "megaphone", Label: "Notice Board", Href: "/announcement", Roles: []model.Role{model.RoleHR, model.RoleStudent}, Feature: "Announcements"},
		{Icon: "trending-up", Label: "Performance", Href: "/performancereview", Roles: []model.Role{model.RoleHR}, Feature: "Performance"},
		{Icon: "calendar-days", Label: "Attendance", Href: "/attendance", Roles: []model.Role{model.RoleHR, model.RoleEmployee}, Feature: "Attendance"},

		// Finance
		{Icon: "badge-dollar-sign", Label: "Finance Workspace", Href: "/finance", Roles: []model.Role{model.RoleFinance}, Feature: "Finance Dashboard"},
		{Icon: "file-text", Label: "Invoices", Href: "/salesinvoice", Roles: []model.Role{model.RoleFinance}, Feature: "Invoices"},
		{Icon: "credit-card", Label: "Payments", Href: "/paymententry", Roles: []model.Role{model.RoleFinance}, Feature: "Payments"},
		{Icon: "receipt", Label: "Expenses", Href: "/expenseclaim", Roles: []model.Role{model.RoleFinance}, Feature: "Expenses"},
		{Icon: "book-open", Label: "General Ledger", Href: "/ledger", Roles: []model.Role{model.RoleFinance}, Feature: "General Ledger"},
		{Icon: "file-text", Label: "Taxation", Href: "/taxation", Roles: []model.Role{model.RoleFinance}, Feature: "Taxation"},

		// Operations
		{Icon: "school", Label: "Universities", Href: "/university", Roles: []model.Role{model.RoleOperations}, Feature: "University"},
		{Icon: "building-2", Label: "Study Centers", Href: "/studycenter", Roles: []model.Role{model.RoleOperations}, Feature: "Study Center"},
		{Icon: "graduation-cap", Label: "Programs", Href: "/program", Roles: []model.Role{model.RoleOperations}, Feature: "Programs"},
		{Icon: "clipboard-list", Label: "APPLICATIONS", Href: "/student", Roles: []model.Role{model.RoleOperations}, Feature: "APPLICATIONS"},
		{Icon: "user-check", Label: "Internal Marks", Href: "/internalmark", Roles: []model.Role{model.RoleOperations, model.RoleStudyCenter}, Feature: "Internal Marks"},

		// CRM and sales
		{Icon: "megaphone", Label: "Leads", Href: "/lead", Roles: []model.Role{model.RoleCRM}, Feature: "Leads"},
		{Icon: "badge-dollar-sign", Label: "Deals", Href: "/deal", Roles: []model.Role{model.RoleCRM}, Feature: "Deals"},
		{Icon: "users", Label: "Customers", Href: "/customer", Roles: []model.Role{model.RoleCRM}, Feature: "Customers"},
		{Icon: "file-text", Label: "Quotations", Href: "/quotation", Roles: []model.Role{model.RoleCRM}, Feature: "Quotations"},
		{Icon: "file-text", Label: "Sales Orders", Href: "/salesorder", Roles: []model.Role{model.RoleCRM}, Feature: "Sales Orders"},

		// Inventory
		{Icon: "grid", Label: "Items", Href: "/item", Roles: []model.Role{model.RoleInventory}, Feature: "Item Management"},
		{Icon: "building-2", Label: "Suppliers", Href: "/supplier", Roles: []model.Role{model.RoleInventory}, Feature: "Suppliers"},
		{Icon: "receipt", Label: "Purchase Receipts", Href: "/purchase-receipt", Roles: []model.Role{model.RoleInventory}, Feature: "Purchase Receipt"},
		{Icon: "file-text", Label: "Stock Entries", Href: "/stockentry", Roles: []model.Role{model.RoleInventory}, Feature: "Stock Entry"},
		{Icon: "building-2", Label: "Warehouses", Href: "/warehouse", Roles: []model.Role{model.RoleInventory}, Feature: "Warehouses"},

		// Projects
		{Icon: "file-text", Label: "Projects", Href: "/project", Roles: []model.Role{model.RoleProjects}, Feature: "Projects"},
		{Icon: "clipboard-list", Label: "Tasks", Href: "/task", Roles: []model.Role{
			model.RoleProjects, model.RoleHR, model.RoleOperations, model.RoleFinance,
			model.RoleDepartmentAdmin, model.RoleEmployee,
		}, Feature: "Tasks"},
		{Icon: "calendar-days", Label: "Timesheets", Href: "/timesheet", Roles: []model.Role{model.RoleProjects}, Feature: "Timesheets"},

		// Universal management
		{Icon: "calendar-days", Label: "Leave Requests", Href: "/leaverequest", Roles: []model.Role{
			model.RoleDepartmentAdmin, model.RoleHR, model.RoleOperations, model.RoleSuperAdmin,
			model.RoleOrganizationAdmin, model.RoleFinance, model.RoleInventory, model.RoleCRM,
			model.RoleSupport, model.RoleAssets, model.RoleProjects, model.RoleHeadOfDepartment,
			model.RoleHumanResources,
		}},

		// Support
		{Icon: "shield", Label: "Tickets", Href: "/ticket", Roles: []model.Role{model.RoleSupport}, Feature: "Tickets"},
		{Icon: "activity", Label: "Issues", Href: "/issue", Roles: []model.Role{model.RoleSupport}, Feature: "Issues"},

		// Assets
		{Icon: "badge-dollar-sign", Label: "Assets", Href: "/asset", Roles: []model.Role{model.RoleAssets}, Feature: "Asset Tracking"},

		// Shared
		{Icon: "bell", Label: "Notifications", Href: "/notifications", Roles: []model.Role{
			model.RoleEmployee, model.RoleDepartmentAdmin, model.RoleOperations, model.RoleFinance,
			model.RoleInventory, model.RoleCRM, model.RoleProjects, model.RoleSupport,
			model.RoleAssets, model.RoleStudyCenter, model.RoleOrganizationAdmin, model.RoleStudent,
		}},
	}
}
