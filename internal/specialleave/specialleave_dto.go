package specialleave

type CreateSpecialLeaveRequest struct {
	Title     string `json:"title" binding:"required,max=100"`
	Gender    string `json:"gender" binding:"required,oneof=ALL MALE FEMALE"`
	Amount    int    `json:"amount" binding:"required,min=1,max=365"`
	TypeOfDay string `json:"type_of_day" binding:"required,oneof=WORKDAY CALENDAR"`
}

type SpecialLeaveResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Gender    string `json:"gender"`
	Amount    int    `json:"amount"`
	TypeOfDay string `json:"type_of_day"`
}

type CreateEmployeeSpecialLeaveRequest struct {
	EmployeeID     string `json:"employee_id" binding:"omitempty,uuid"`
	SpecialLeaveID string `json:"special_leave_id" binding:"required,uuid"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
	Reason         string `json:"reason" binding:"max=500"`
}

type RejectRequest struct {
	Note string `json:"note"`
}

type ListQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=WAITING APPROVE REJECT"`
	Page       int    `form:"-"`
	PageSize   int    `form:"-"`
}

type EmployeeSpecialLeaveResponse struct {
	ID           string                `json:"id"`
	EmployeeID   string                `json:"employee_id"`
	SpecialLeave *SpecialLeaveResponse `json:"special_leave,omitempty"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Days         int                   `json:"days"`
	Reason       string                `json:"reason"`
	Status       string                `json:"status"`
	CreatedBy    string                `json:"created_by"`
	DecidedBy    *string               `json:"decided_by,omitempty"`
	DecidedAt    *string               `json:"decided_at,omitempty"`
	Note         *string               `json:"note,omitempty"`
	CreatedAt    string                `json:"created_at"`
}
