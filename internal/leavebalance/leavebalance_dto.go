package leavebalance

type AdjustBalanceRequest struct {
	Year   int    `json:"year" binding:"required,min=2000,max=2100"`
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Delta       int     `json:"delta"`
	Kind        string  `json:"kind"`
	ReferenceID *string `json:"reference_id,omitempty"`
	Note        string  `json:"note,omitempty"`
	CreatedBy   *string `json:"created_by,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type BalanceResponse struct {
	EmployeeID   string                `json:"employee_id"`
	Year         int                   `json:"year"`
	Amount       int                   `json:"amount"`
	Transactions []TransactionResponse `json:"transactions"`
}
