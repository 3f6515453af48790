package auth

type RegisterRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,max=255"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN MANAGER EMPLOYEE"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
