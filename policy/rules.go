package policy

import "github.com/orgdesk/orgdesk/model"

// Action is an operation a session attempts against a doctype.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// accessRule grants an action on a doctype to a role set and/or a feature.
// An empty doctype matches every doctype; an empty role set matches every
// role. Rules are evaluated in order; the first match wins, and a matching
// deny rule stops evaluation.
type accessRule struct {
	Doctype model.Doctype
	Actions []Action
	Roles   []model.Role
	Feature string
	Deny    bool
}

func (r accessRule) matches(doctype model.Doctype, action Action, s model.Session) bool {
	if r.Doctype != "" && r.Doctype != doctype {
		return false
	}
	matched := false
	for _, a := range r.Actions {
		if a == action {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if len(r.Roles) > 0 {
		found := false
		for _, role := range r.Roles {
			if role == s.Role {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if r.Feature != "" && !s.HasFeature(r.Feature) {
		return false
	}
	return true
}

// The rule table. Ownership-sensitive decisions (own task, own leave
// request) live in FieldView and the workflow package; this table covers
// the doctype/action gates the controllers consult.
var accessRules = []accessRule{
	// HR reviews complaints but cannot modify or delete them.
	{Doctype: model.DoctypeComplaint, Actions: []Action{ActionUpdate, ActionDelete},
		Roles: []model.Role{model.RoleHR}, Deny: true},

	// The holiday list is read-only for employees; they never author
	// calendar entries.
	{Doctype: model.DoctypeHoliday, Actions: []Action{ActionCreate, ActionUpdate, ActionDelete},
		Roles: []model.Role{model.RoleEmployee}, Deny: true},

	// Employees work their tasks; they do not remove them.
	{Doctype: model.DoctypeTask, Actions: []Action{ActionDelete},
		Roles: []model.Role{model.RoleEmployee}, Deny: true},

	// Everything else defaults to allowed; the employee sandbox below is
	// enforced first.
	{Actions: []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
}

// employeeDoctypes is the sandbox: the set of doctypes an Employee session
// may touch at all. Mirrors the route guard's action paths plus the
// dashboard widgets.
var employeeDoctypes = map[model.Doctype]bool{
	model.DoctypeComplaint:    true,
	model.DoctypeHoliday:      true,
	model.DoctypeAnnouncement: true,
	model.DoctypeTask:         true,
	model.DoctypeLeaveRequest: true,
	"attendance":              true,
}

// Can is the single predicate consulted for doctype/action gates. The
// employee sandbox is a named override rather than inline string checks
// scattered across handlers.
func Can(s model.Session, doctype model.Doctype, action Action) bool {
	if !s.Authenticated() {
		return false
	}

	if s.Role == model.RoleEmployee && !employeeDoctypes[doctype] {
		return false
	}

	for _, rule := range accessRules {
		if rule.matches(doctype, action, s) {
			return !rule.Deny
		}
	}
	return false
}
