package model

// NavItem is one entry in the navigation catalog. Items are static per
// session render; the filter never mutates them.
type NavItem struct {
	Icon    string `json:"icon"`
	Label   string `json:"label"`
	Href    string `json:"href"`
	Roles   []Role `json:"roles,omitempty"`
	Feature string `json:"feature,omitempty"`
}

// AllowsRole reports whether the item's role set admits the given role.
// An empty set admits everyone.
func (n NavItem) AllowsRole(r Role) bool {
	if len(n.Roles) == 0 {
		return true
	}
	return r != "" && roleIn(r, n.Roles)
}
