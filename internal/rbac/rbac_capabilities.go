package rbac

import (
	"strings"

	"pengelola-cuti/internal/domain"
)

type Capability struct {
	Resource string
	Action   string
}

func (c Capability) String() string {
	return c.Resource + ":" + c.Action
}

// RoleParents: setiap role mewarisi semua kemampuan parent-nya.
var RoleParents = map[domain.Role]domain.Role{
	domain.RoleManager:    domain.RoleEmployee,
	domain.RoleAdmin:      domain.RoleManager,
	domain.RoleSuperAdmin: domain.RoleAdmin,
}

// DefaultCapabilities lists what each role adds on top of its parent.
var DefaultCapabilities = map[domain.Role][]Capability{
	domain.RoleEmployee: {
		{domain.ResourceLeave, domain.ActionCreate},
		{domain.ResourceSpecialLeave, domain.ActionCreate},
	},
	domain.RoleManager: {
		{domain.ResourceEmployee, domain.ActionRead},
		{domain.ResourcePosition, domain.ActionRead},
		{domain.ResourceLeave, domain.ActionRead},
		{domain.ResourceLeave, domain.ActionApprove},
		{domain.ResourceSpecialLeave, domain.ActionRead},
		{domain.ResourceSpecialLeave, domain.ActionApprove},
		{domain.ResourceBalance, domain.ActionRead},
		{domain.ResourceSetting, domain.ActionRead},
	},
	domain.RoleAdmin: {
		{domain.ResourceEmployee, domain.ActionCreate},
		{domain.ResourceEmployee, domain.ActionUpdate},
		{domain.ResourceEmployee, domain.ActionDelete},
		{domain.ResourcePosition, domain.ActionCreate},
		{domain.ResourcePosition, domain.ActionUpdate},
		{domain.ResourcePosition, domain.ActionDelete},
		{domain.ResourceLeave, domain.ActionManage},
		{domain.ResourceSpecialLeave, domain.ActionManage},
		{domain.ResourceBalance, domain.ActionUpdate},
		{domain.ResourceSetting, domain.ActionUpdate},
		{domain.ResourceUser, domain.ActionRead},
		{domain.ResourceUser, domain.ActionCreate},
		{domain.ResourceUser, domain.ActionUpdate},
		{domain.ResourceRole, domain.ActionRead},
	},
	domain.RoleSuperAdmin: {
		{"*", "*"},
	},
}

var knownResources = []string{
	domain.ResourceEmployee, domain.ResourcePosition, domain.ResourceLeave,
	domain.ResourceSpecialLeave, domain.ResourceBalance, domain.ResourceSetting,
	domain.ResourceRole, domain.ResourceUser,
}

var knownActions = []string{
	domain.ActionRead, domain.ActionCreate, domain.ActionUpdate,
	domain.ActionDelete, domain.ActionApprove, domain.ActionManage,
}

// ParseCapability reads "resource:action".
func ParseCapability(v string) (Capability, bool) {
	resource, action, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok || !contains(knownResources, resource) || !contains(knownActions, action) {
		return Capability{}, false
	}
	return Capability{Resource: resource, Action: action}, true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
