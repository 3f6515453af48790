package rbac

type RoleResponse struct {
	Role     string   `json:"role"`
	Inherits string   `json:"inherits,omitempty"`
	Builtin  []string `json:"builtin"`
	Granted  []string `json:"granted"`
}

type UpdateRolePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required,dive,required"`
}
