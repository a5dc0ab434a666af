package domain

import (
	"fmt"
	"strings"
)

// Role is the acting employee's role as carried in the access token.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

var Roles = []Role{RoleEmployee, RoleManager, RoleHR, RoleAdmin}

func ParseRole(v string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(v))); r {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", v)
	}
}

func (r Role) String() string { return string(r) }
