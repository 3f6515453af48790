package employee

import "pengelola-cuti/internal/accrual"

type ContractRequest struct {
	IsContract    bool   `json:"is_contract"`
	NewContract   bool   `json:"new_contract"`
	StartContract string `json:"start_contract" binding:"required_if=IsContract true"`
	EndContract   string `json:"end_contract"`
}

type CreateEmployeeRequest struct {
	// Kosongkan untuk NIK otomatis.
	NIK        string          `json:"nik" binding:"omitempty,max=30"`
	Name       string          `json:"name" binding:"required,max=255"`
	Gender     string          `json:"gender" binding:"required,oneof=MALE FEMALE"`
	PositionID string          `json:"position_id" binding:"omitempty,uuid"`
	Contract   ContractRequest `json:"contract"`
}

type UpdateEmployeeRequest struct {
	NIK        string          `json:"nik" binding:"required,max=30"`
	Name       string          `json:"name" binding:"required,max=255"`
	Gender     string          `json:"gender" binding:"required,oneof=MALE FEMALE"`
	PositionID string          `json:"position_id" binding:"omitempty,uuid"`
	Contract   ContractRequest `json:"contract"`
}

type ListEmployeesQuery struct {
	Q         string `form:"q" binding:"max=100"`
	IsWorking *bool  `form:"is_working"`
	Page      int    `form:"-"`
	PageSize  int    `form:"-"`
}

type ContractResponse struct {
	IsContract    bool    `json:"is_contract"`
	NewContract   bool    `json:"new_contract"`
	StartContract *string `json:"start_contract,omitempty"`
	EndContract   *string `json:"end_contract,omitempty"`
}

type EmployeePositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                    `json:"id"`
	NIK          string                    `json:"nik"`
	Name         string                    `json:"name"`
	Gender       string                    `json:"gender"`
	IsWorking    bool                      `json:"is_working"`
	PositionID   string                    `json:"position_id,omitempty"`
	Position     *EmployeePositionResponse `json:"position,omitempty"`
	Contract     *ContractResponse         `json:"contract,omitempty"`
	LeaveBalance *int                      `json:"leave_balance,omitempty"`
	BalanceYear  int                       `json:"balance_year,omitempty"`
	Accrual      *accrual.ScheduleResponse `json:"accrual,omitempty"`
	CreatedAt    string                    `json:"created_at"`
}

type EmployeeOptionResponse struct {
	ID   string `json:"id"`
	NIK  string `json:"nik"`
	Name string `json:"name"`
}

type HistoryResponse struct {
	ID         string  `json:"id"`
	NIK        string  `json:"nik"`
	Name       string  `json:"name"`
	PositionID *string `json:"position_id,omitempty"`
	ChangedBy  *string `json:"changed_by,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
