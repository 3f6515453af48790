package app

import (
	"pengelola-cuti/internal/accrual"
	"pengelola-cuti/internal/auth"
	"pengelola-cuti/internal/employee"
	"pengelola-cuti/internal/leave"
	"pengelola-cuti/internal/leavebalance"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/position"
	"pengelola-cuti/internal/rbac"
	"pengelola-cuti/internal/setting"
	"pengelola-cuti/internal/shared/counter"
	"pengelola-cuti/internal/specialleave"

	"gorm.io/gorm"
)

// Models returns every persisted entity in dependency order.
func Models() []any {
	return []any{
		&position.Position{},
		&employee.Employee{},
		&employee.TypeOfEmployee{},
		&employee.History{},
		&leavebalance.AmountOfLeave{},
		&leavebalance.Transaction{},
		&accrual.Schedule{},
		&counter.Counter{},
		&leave.TypeOfLeave{},
		&leave.Leave{},
		&specialleave.SpecialLeave{},
		&specialleave.EmployeeSpecialLeave{},
		&auth.User{},
		&rbac.RolePermission{},
		&setting.Setting{},
		&kafka.OutboxEvent{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
