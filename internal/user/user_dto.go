package user

type ListUsersQuery struct {
	Q        string `form:"q" binding:"max=100"`
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN MANAGER EMPLOYEE"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserResponse struct {
	ID         string  `json:"id"`
	EmployeeID *string `json:"employee_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
}
