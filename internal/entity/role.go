package entity

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleStaff           Role = "Staff"
	RoleHigherAuthority Role = "Higher Authority"
	RoleJuniorStaff     Role = "Junior Staff"
)

func ParseRole(s string) (Role, error) {
	role := Role(strings.TrimSpace(s))

	switch role {
	case RoleStaff, RoleHigherAuthority, RoleJuniorStaff:
		return role, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrRoleInvalid, s)
	}
}

// RequiresDepartment reports whether accounts of this role belong to a department.
func (r Role) RequiresDepartment() bool {
	switch r {
	case RoleHigherAuthority:
		return false
	case RoleStaff, RoleJuniorStaff:
		return true
	default:
		return true
	}
}

func (r Role) DashboardURL() string {
	switch r {
	case RoleHigherAuthority:
		return "/admin-dashboard"
	case RoleStaff, RoleJuniorStaff:
		return "/staff-dashboard"
	default:
		return "/staff-dashboard"
	}
}

// CanResolveAny reports whether the role may resolve reports assigned to someone else.
func (r Role) CanResolveAny() bool {
	switch r {
	case RoleStaff, RoleHigherAuthority:
		return true
	case RoleJuniorStaff:
		return false
	default:
		return false
	}
}
