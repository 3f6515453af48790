package leave

type CreateTypeOfLeaveRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Category string `json:"category" binding:"required,oneof=REGULAR OPTIONAL MANDATORY"`
}

type TypeOfLeaveResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type CreateLeaveRequest struct {
	// Only read on the admin route; self-service uses the caller's employee.
	EmployeeID    string `json:"employee_id" binding:"omitempty,uuid"`
	TypeOfLeaveID string `json:"type_of_leave_id" binding:"required,uuid"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Reason        string `json:"reason" binding:"required,max=500"`
}

type CreateCollectiveLeaveRequest struct {
	TypeOfLeaveID string `json:"type_of_leave_id" binding:"required,uuid"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Reason        string `json:"reason" binding:"required,max=500"`
}

type RejectLeaveRequest struct {
	Note string `json:"note"`
}

type ListLeavesQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=WAITING APPROVE REJECT"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Page       int    `form:"-"`
	PageSize   int    `form:"-"`
}

type LeaveResponse struct {
	ID            string               `json:"id"`
	EmployeeID    string               `json:"employee_id"`
	TypeOfLeave   *TypeOfLeaveResponse `json:"type_of_leave,omitempty"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	AmountOfLeave int                  `json:"amount_of_leave"`
	Reason        string               `json:"reason"`
	Status        string               `json:"status"`
	CreatedBy     string               `json:"created_by"`
	DecidedBy     *string              `json:"decided_by,omitempty"`
	DecidedAt     *string              `json:"decided_at,omitempty"`
	Note          *string              `json:"note,omitempty"`
	CreatedAt     string               `json:"created_at"`
}

type CollectiveLeaveResponse struct {
	TypeOfLeaveID string   `json:"type_of_leave_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Days          int      `json:"days"`
	LeaveIDs      []string `json:"leave_ids"`
	// Karyawan yang sudah cuti di periode ini, tidak dipotong lagi.
	SkippedEmployeeIDs []string `json:"skipped_employee_ids,omitempty"`
}
