package rbac

import "strings"

// Role is a flat organisation membership label. Roles are not ordered:
// a route admits exactly the roles it lists.
type Role string

const (
	Owner   Role = "OWNER"
	Admin   Role = "ADMIN"
	Manager Role = "MANAGER"
	Staff   Role = "STAFF"
	Viewer  Role = "VIEWER"
)

// AllRoles lists the role enum in declaration order.
var AllRoles = RoleSet{Owner, Admin, Manager, Staff, Viewer}

// ParseRole trims and upper-cases raw so header values like "owner" match
// the enum. Unknown labels are returned normalised; Valid reports them.
func ParseRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

func (r Role) Valid() bool {
	return AllRoles.Contains(r)
}

func (r Role) String() string { return string(r) }

// RoleSet is the allow-list declared for a route. A nil set means nothing
// was declared; an empty non-nil set is an explicit scope-only declaration.
type RoleSet []Role

func Roles(roles ...Role) RoleSet {
	if roles == nil {
		return RoleSet{}
	}
	return RoleSet(roles)
}

func (s RoleSet) Contains(r Role) bool {
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}

func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}
