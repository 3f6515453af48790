package accrual

import "time"

type ScheduleResponse struct {
	DayOfMonth int     `json:"day_of_month"`
	Amount     int     `json:"amount"`
	NextRunAt  string  `json:"next_run_at"`
	LastRunAt  *string `json:"last_run_at,omitempty"`
	Active     bool    `json:"active"`
}

func mapToResponse(s *Schedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		DayOfMonth: s.DayOfMonth,
		Amount:     s.Amount,
		NextRunAt:  s.NextRunAt.Format(time.DateOnly),
		Active:     s.Active,
	}
	if s.LastRunAt != nil {
		v := s.LastRunAt.Format(time.RFC3339)
		resp.LastRunAt = &v
	}
	return resp
}
