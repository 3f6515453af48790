package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pengelola-cuti/internal/accrual"
	accrualerrors "pengelola-cuti/internal/accrual/errors"
	employeeerrors "pengelola-cuti/internal/employee/errors"
	"pengelola-cuti/internal/events"
	"pengelola-cuti/internal/leavebalance"
	leavebalanceerrors "pengelola-cuti/internal/leavebalance/errors"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/shared/contextutil"
	"pengelola-cuti/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Disable(ctx context.Context, id string) error
	Enable(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]HistoryResponse, error)
	Balance(ctx context.Context, id string, year int) (leavebalance.BalanceResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	counter   counter.Repository
	scheduler accrual.Scheduler
	ledger    leavebalance.Ledger
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	counter counter.Repository,
	scheduler accrual.Scheduler,
	ledger leavebalance.Ledger,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		counter:   counter,
		scheduler: scheduler,
		ledger:    ledger,
		outbox:    outbox,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("nik", req.NIK),
		zap.String("position_id", req.PositionID),
	)

	positionID, err := s.parsePosition(ctx, s.repo, req.PositionID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	toe, err := buildTypeOfEmployee(req.Contract)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nik := strings.TrimSpace(req.NIK)
	if nik == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeNIK)
		if err != nil {
			s.logger.Error("create employee generate nik failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		nik = fmt.Sprintf("%06d", nextVal)
	}

	empl := &Employee{
		ID:             uuid.New(),
		NIK:            nik,
		Name:           strings.TrimSpace(req.Name),
		Gender:         Gender(req.Gender),
		IsWorking:      true,
		PositionID:     positionID,
		TypeOfEmployee: toe,
	}
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	now := s.now()
	initial, err := s.scheduler.WithTx(tx).Onboard(ctx, empl.ID, contractInfo(toe), now)
	if err != nil {
		return EmployeeResponse{}, err
	}

	evt := events.EmployeeCreatedEvent{
		EventType:      events.EmployeeCreatedType,
		EmployeeID:     empl.ID.String(),
		NIK:            empl.NIK,
		Name:           empl.Name,
		OpeningBalance: initial.Balance,
		OccurredAt:     now.UTC(),
	}
	row, err := kafka.NewOutboxEvent("employee", empl.ID.String(), events.EmployeeCreatedType, events.EmployeeLifecycleTopic, rid, evt)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.Int("opening_balance", initial.Balance),
	)

	resp := mapToResponse(*empl)
	resp.LeaveBalance = &initial.Balance
	resp.BalanceYear = now.UTC().Year()
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, int64, error) {
	s.logger.Debug("get all employees requested", zap.String("q", q.Q), zap.Int("page", q.Page))
	emps, total, err := s.repo.FindAll(ctx, ListFilter{
		Q:         q.Q,
		IsWorking: q.IsWorking,
		Offset:    (q.Page - 1) * q.PageSize,
		Limit:     q.PageSize,
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		resp[i] = mapToResponse(e)
	}
	return resp, total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk handle traffic tinggi saat Admin buka form
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(emps))
		for i, e := range emps {
			resp[i] = EmployeeOptionResponse{ID: e.ID.String(), NIK: e.NIK, Name: e.Name}
		}

		// 3. Simpan ke Redis (TTL 1 jam cukup karena data master)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.find(ctx, s.repo, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	resp := mapToResponse(*empl)

	year := s.now().UTC().Year()
	amount, err := s.ledger.Balance(ctx, empl.ID, year)
	switch {
	case err == nil:
		resp.LeaveBalance = &amount
		resp.BalanceYear = year
	case !errors.Is(err, leavebalanceerrors.ErrBalanceNotFound):
		s.logger.Error("get employee balance failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	sched, err := s.scheduler.GetSchedule(ctx, empl.ID)
	switch {
	case err == nil:
		resp.Accrual = sched
	case !errors.Is(err, accrualerrors.ErrScheduleNotFound):
		s.logger.Error("get employee accrual schedule failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("actor_id", actorID),
		zap.String("position_id", req.PositionID),
	)

	toe, err := buildTypeOfEmployee(req.Contract)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := s.find(ctx, qtx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	positionID, err := s.parsePosition(ctx, qtx, req.PositionID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	nik := strings.TrimSpace(req.NIK)
	name := strings.TrimSpace(req.Name)
	if empl.NIK != nik || empl.Name != name || !sameUUID(empl.PositionID, positionID) {
		h := &History{
			EmployeeID: empl.ID,
			NIK:        empl.NIK,
			Name:       empl.Name,
			PositionID: empl.PositionID,
		}
		if actor, err := uuid.Parse(actorID); err == nil {
			h.ChangedBy = &actor
		}
		if err := qtx.CreateHistory(ctx, h); err != nil {
			s.logger.Error("update employee history persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if !sameUUID(empl.PositionID, positionID) {
		empl.Position = nil
	}
	empl.NIK = nik
	empl.Name = name
	empl.Gender = Gender(req.Gender)
	empl.PositionID = positionID
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if contractChanged(empl.TypeOfEmployee, toe) {
		toe.EmployeeID = empl.ID
		if err := qtx.SaveTypeOfEmployee(ctx, toe); err != nil {
			s.logger.Error("update employee contract persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if empl.IsWorking {
			if err := s.scheduler.WithTx(tx).Sync(ctx, empl.ID, contractInfo(toe), s.now()); err != nil {
				return EmployeeResponse{}, err
			}
		}
		empl.TypeOfEmployee = toe
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// Disable menandai karyawan tidak aktif dan menghentikan akrual bulanan.
func (s *service) Disable(ctx context.Context, id string) error {
	return s.setWorking(ctx, id, false)
}

func (s *service) Enable(ctx context.Context, id string) error {
	return s.setWorking(ctx, id, true)
}

func (s *service) setWorking(ctx context.Context, id string, working bool) error {
	s.logger.Debug("set employee working requested", zap.String("employee_id", id), zap.Bool("working", working))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("set employee working begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := s.find(ctx, qtx, id)
	if err != nil {
		return err
	}

	rows, err := qtx.SetWorking(ctx, empl.ID, working)
	if err != nil {
		s.logger.Error("set employee working persist failed", zap.Error(err))
		return err
	}
	if rows == 0 {
		if working {
			return employeeerrors.ErrAlreadyEnabled
		}
		return employeeerrors.ErrAlreadyDisabled
	}

	sched := s.scheduler.WithTx(tx)
	if working {
		err = sched.Sync(ctx, empl.ID, contractInfo(empl.TypeOfEmployee), s.now())
	} else {
		err = sched.Offboard(ctx, empl.ID)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("set employee working commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("set employee working success", zap.String("employee_id", id), zap.Bool("working", working))
	return nil
}

func (s *service) History(ctx context.Context, id string) ([]HistoryResponse, error) {
	empl, err := s.find(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListHistory(ctx, empl.ID)
	if err != nil {
		s.logger.Error("list employee history failed", zap.Error(err))
		return nil, err
	}

	resp := make([]HistoryResponse, len(rows))
	for i, h := range rows {
		item := HistoryResponse{
			ID:        h.ID.String(),
			NIK:       h.NIK,
			Name:      h.Name,
			CreatedAt: h.CreatedAt.Format(time.RFC3339),
		}
		if h.PositionID != nil {
			v := h.PositionID.String()
			item.PositionID = &v
		}
		if h.ChangedBy != nil {
			v := h.ChangedBy.String()
			item.ChangedBy = &v
		}
		resp[i] = item
	}
	return resp, nil
}

func (s *service) Balance(ctx context.Context, id string, year int) (leavebalance.BalanceResponse, error) {
	empl, err := s.find(ctx, s.repo, id)
	if err != nil {
		return leavebalance.BalanceResponse{}, err
	}
	if year == 0 {
		year = s.now().UTC().Year()
	}
	return s.ledger.Summary(ctx, empl.ID.String(), year)
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("find employee failed", zap.String("employee_id", id), zap.Error(err))
		}
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

func (s *service) parsePosition(ctx context.Context, repo Repository, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidPositionID
	}
	ok, err := repo.PositionExists(ctx, id)
	if err != nil {
		s.logger.Error("check position failed", zap.String("position_id", raw), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, employeeerrors.ErrPositionNotFound
	}
	return &id, nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func buildTypeOfEmployee(req ContractRequest) (*TypeOfEmployee, error) {
	toe := &TypeOfEmployee{IsContract: req.IsContract, NewContract: req.NewContract}
	if !req.IsContract {
		return toe, nil
	}

	start, err := parseOptionalDate(req.StartContract)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(req.EndContract)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, employeeerrors.ErrInvalidContractRange
	}
	toe.StartContract = start
	toe.EndContract = end
	return toe, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func contractInfo(t *TypeOfEmployee) accrual.ContractInfo {
	if t == nil {
		return accrual.ContractInfo{}
	}
	info := accrual.ContractInfo{IsContract: t.IsContract, NewContract: t.NewContract}
	if t.StartContract != nil {
		info.StartContract = *t.StartContract
	}
	return info
}

func contractChanged(old, next *TypeOfEmployee) bool {
	if old == nil {
		return true
	}
	return old.IsContract != next.IsContract ||
		old.NewContract != next.NewContract ||
		!sameDate(old.StartContract, next.StartContract) ||
		!sameDate(old.EndContract, next.EndContract)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Format(time.DateOnly) == b.Format(time.DateOnly)
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        empl.ID.String(),
		NIK:       empl.NIK,
		Name:      empl.Name,
		Gender:    string(empl.Gender),
		IsWorking: empl.IsWorking,
		CreatedAt: empl.CreatedAt.Format(time.RFC3339),
	}
	if empl.PositionID != nil {
		resp.PositionID = empl.PositionID.String()
	}
	if empl.Position != nil {
		resp.Position = &EmployeePositionResponse{ID: empl.Position.ID.String(), Name: empl.Position.Name}
	}
	if t := empl.TypeOfEmployee; t != nil {
		c := &ContractResponse{IsContract: t.IsContract, NewContract: t.NewContract}
		if t.StartContract != nil {
			v := t.StartContract.Format(time.DateOnly)
			c.StartContract = &v
		}
		if t.EndContract != nil {
			v := t.EndContract.Format(time.DateOnly)
			c.EndContract = &v
		}
		resp.Contract = c
	}
	return resp
}
