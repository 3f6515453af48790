package domain

import "strings"

// Role is the closed set of roles; authorization never compares display names.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
)

var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleEmployee}

func ParseRole(v string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(v)))
	for _, known := range AllRoles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

const (
	ResourceEmployee     = "employee"
	ResourcePosition     = "position"
	ResourceLeave        = "leave"
	ResourceSpecialLeave = "special_leave"
	ResourceBalance      = "balance"
	ResourceSetting      = "setting"
	ResourceRole         = "role"
	ResourceUser         = "user"
)

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionManage  = "manage"
)

type EnforceRequest struct {
	Role     Role   `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
