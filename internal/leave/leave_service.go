package leave

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"pengelola-cuti/internal/approval"
	"pengelola-cuti/internal/events"
	leaveerrors "pengelola-cuti/internal/leave/errors"
	"pengelola-cuti/internal/leavebalance"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/notification"
	"pengelola-cuti/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	CreateType(ctx context.Context, req CreateTypeOfLeaveRequest) (TypeOfLeaveResponse, error)
	ListTypes(ctx context.Context) ([]TypeOfLeaveResponse, error)

	Create(ctx context.Context, actorID, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	CreateCollective(ctx context.Context, actorID string, req CreateCollectiveLeaveRequest) (CollectiveLeaveResponse, error)
	GetAll(ctx context.Context, query ListLeavesQuery) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, note string) (LeaveResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	ledger   leavebalance.Ledger
	outbox   kafka.OutboxRepository
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	ledger leavebalance.Ledger,
	outbox kafka.OutboxRepository,
	notifier notification.Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		outbox:   outbox,
		notifier: notifier,
		logger:   l,
	}
}

func (s *service) CreateType(ctx context.Context, req CreateTypeOfLeaveRequest) (TypeOfLeaveResponse, error) {
	category := Category(strings.ToUpper(strings.TrimSpace(req.Category)))
	if !category.Valid() {
		return TypeOfLeaveResponse{}, leaveerrors.ErrInvalidCategory
	}

	t := &TypeOfLeave{
		Title:    strings.TrimSpace(req.Title),
		Category: category,
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		s.logger.Error("create type of leave persist failed", zap.Error(err))
		return TypeOfLeaveResponse{}, mapTypeRepositoryError(err)
	}
	s.logger.Info("create type of leave success",
		zap.String("type_of_leave_id", t.ID.String()),
		zap.String("category", string(category)),
	)
	return mapTypeToResponse(*t), nil
}

func (s *service) ListTypes(ctx context.Context) ([]TypeOfLeaveResponse, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]TypeOfLeaveResponse, len(types))
	for i, t := range types {
		resp[i] = mapTypeToResponse(t)
	}
	return resp, nil
}

// Create files a leave for one employee. REGULAR leaves wait for an approver,
// OPTIONAL leaves are approved and debited in the same transaction.
func (s *service) Create(ctx context.Context, actorID, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if strings.TrimSpace(employeeID) == "" {
		return LeaveResponse{}, leaveerrors.ErrEmployeeIDRequired
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	typeUUID, err := uuid.Parse(req.TypeOfLeaveID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidTypeOfLeaveID
	}
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(tx.Error))
		return LeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leaveType, err := qtx.FindTypeByID(ctx, typeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrTypeOfLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if leaveType.Category == CategoryMandatory {
		return LeaveResponse{}, leaveerrors.ErrMandatoryViaCollective
	}

	if err := ensureWorking(ctx, qtx, employeeUUID); err != nil {
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, employeeUUID, startDate, endDate)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		EmployeeID:    employeeUUID,
		TypeOfLeaveID: typeUUID,
		StartDate:     startDate,
		EndDate:       endDate,
		AmountOfLeave: approval.InclusiveDays(startDate, endDate),
		Reason:        strings.TrimSpace(req.Reason),
		Status:        approval.StatusWaiting,
		CreatedBy:     actorUUID,
	}

	autoApprove := leaveType.Category == CategoryOptional
	if autoApprove {
		d := approval.Approve(actorUUID, time.Now())
		l.Status = d.Target
		l.DecidedBy = &d.DecidedBy
		l.DecidedAt = &d.DecidedAt
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if autoApprove {
		if err := s.ledger.WithTx(tx).Debit(ctx, employeeUUID, startDate.Year(), l.AmountOfLeave, leavebalance.KindLeave, &l.ID); err != nil {
			s.logger.Warn("create optional leave debit failed", zap.String("employee_id", employeeID), zap.Error(err))
			return LeaveResponse{}, err
		}
		if err := s.recordDecision(ctx, tx, *l); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", l.Status.String()),
	)

	l.TypeOfLeave = leaveType
	if autoApprove {
		s.notifyApproved(ctx, *l)
	}
	return mapToResponse(*l), nil
}

// CreateCollective books an approved MANDATORY leave for every working
// employee. Employees already on leave in the period are skipped so their
// days are not charged twice. The batch is atomic: one failed debit fails all of it.
func (s *service) CreateCollective(ctx context.Context, actorID string, req CreateCollectiveLeaveRequest) (CollectiveLeaveResponse, error) {
	s.logger.Debug("create collective leave requested",
		zap.String("actor_id", actorID),
		zap.String("type_of_leave_id", req.TypeOfLeaveID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return CollectiveLeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	typeUUID, err := uuid.Parse(req.TypeOfLeaveID)
	if err != nil {
		return CollectiveLeaveResponse{}, leaveerrors.ErrInvalidTypeOfLeaveID
	}
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return CollectiveLeaveResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create collective leave begin tx failed", zap.Error(tx.Error))
		return CollectiveLeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leaveType, err := qtx.FindTypeByID(ctx, typeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CollectiveLeaveResponse{}, leaveerrors.ErrTypeOfLeaveNotFound
		}
		return CollectiveLeaveResponse{}, err
	}
	if leaveType.Category != CategoryMandatory {
		return CollectiveLeaveResponse{}, leaveerrors.ErrNotMandatoryType
	}

	employeeIDs, err := qtx.ListWorkingEmployeeIDs(ctx)
	if err != nil {
		s.logger.Error("create collective leave list employees failed", zap.Error(err))
		return CollectiveLeaveResponse{}, err
	}
	if len(employeeIDs) == 0 {
		return CollectiveLeaveResponse{}, leaveerrors.ErrNoWorkingEmployees
	}

	eligible := make([]uuid.UUID, 0, len(employeeIDs))
	var skipped []uuid.UUID
	for _, employeeID := range employeeIDs {
		overlap, err := qtx.HasOverlappingPeriod(ctx, employeeID, startDate, endDate)
		if err != nil {
			s.logger.Error("create collective leave overlap check failed", zap.Error(err))
			return CollectiveLeaveResponse{}, err
		}
		if overlap {
			skipped = append(skipped, employeeID)
			continue
		}
		eligible = append(eligible, employeeID)
	}
	if len(eligible) == 0 {
		return CollectiveLeaveResponse{}, leaveerrors.ErrNoEligibleEmployees
	}
	if len(skipped) > 0 {
		s.logger.Warn("create collective leave skipped employees on leave",
			zap.Int("skipped", len(skipped)),
		)
	}

	d := approval.Approve(actorUUID, time.Now())
	days := approval.InclusiveDays(startDate, endDate)
	leaves := make([]Leave, len(eligible))
	for i, employeeID := range eligible {
		leaves[i] = Leave{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			TypeOfLeaveID: typeUUID,
			StartDate:     startDate,
			EndDate:       endDate,
			AmountOfLeave: days,
			Reason:        strings.TrimSpace(req.Reason),
			Status:        d.Target,
			CreatedBy:     actorUUID,
			DecidedBy:     &d.DecidedBy,
			DecidedAt:     &d.DecidedAt,
			Version:       1,
		}
	}

	if err := qtx.CreateBatch(ctx, leaves); err != nil {
		s.logger.Error("create collective leave persist failed", zap.Error(err))
		return CollectiveLeaveResponse{}, err
	}

	ltx := s.ledger.WithTx(tx)
	for _, l := range leaves {
		if err := ltx.Debit(ctx, l.EmployeeID, startDate.Year(), days, leavebalance.KindCollective, &l.ID); err != nil {
			s.logger.Warn("create collective leave debit failed",
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Error(err),
			)
			return CollectiveLeaveResponse{}, err
		}
		if err := s.recordDecision(ctx, tx, l); err != nil {
			return CollectiveLeaveResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create collective leave commit failed", zap.Error(err))
		return CollectiveLeaveResponse{}, err
	}
	s.logger.Info("create collective leave success",
		zap.String("type_of_leave_id", req.TypeOfLeaveID),
		zap.Int("employees", len(leaves)),
		zap.Int("days", days),
	)

	fields := map[string]string{
		"title":      leaveType.Title,
		"start_date": startDate.Format(dateLayout),
		"end_date":   endDate.Format(dateLayout),
		"days":       strconv.Itoa(days),
	}
	resp := CollectiveLeaveResponse{
		TypeOfLeaveID: typeUUID.String(),
		StartDate:     startDate.Format(dateLayout),
		EndDate:       endDate.Format(dateLayout),
		Days:          days,
		LeaveIDs:      make([]string, len(leaves)),
	}
	for _, id := range skipped {
		resp.SkippedEmployeeIDs = append(resp.SkippedEmployeeIDs, id.String())
	}
	for i, l := range leaves {
		resp.LeaveIDs[i] = l.ID.String()
		s.notifier.Notify(ctx, l.EmployeeID, notification.TemplateLeaveCollective, fields)
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, query ListLeavesQuery) ([]LeaveResponse, int64, error) {
	filter := ListFilter{
		Year:   query.Year,
		Offset: (query.Page - 1) * query.PageSize,
		Limit:  query.PageSize,
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if query.EmployeeID != "" {
		id, err := uuid.Parse(query.EmployeeID)
		if err != nil {
			return nil, 0, leaveerrors.ErrInvalidEmployeeID
		}
		filter.EmployeeID = &id
	}
	if query.Status != "" {
		status, err := approval.ParseStatus(query.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = status
	}

	leaves, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(leaves), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

// Approve moves a WAITING leave to APPROVE and debits the inclusive span
// from the start year's balance in the same transaction.
func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	s.logger.Debug("approve leave requested", zap.String("leave_id", id), zap.String("actor_id", actorID))

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.decide(ctx, leaveID, approval.Approve(actorUUID, time.Now()))
	if err != nil {
		return LeaveResponse{}, err
	}

	s.notifyApproved(ctx, *l)
	return mapToResponse(*l), nil
}

// Reject moves a WAITING leave to REJECT. The balance is untouched.
func (s *service) Reject(ctx context.Context, actorID, id, note string) (LeaveResponse, error) {
	d, err := approval.Reject(uuid.Nil, note, time.Now())
	if err != nil {
		return LeaveResponse{}, err
	}
	s.logger.Debug("reject leave requested", zap.String("leave_id", id), zap.String("actor_id", actorID))

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	d.DecidedBy = actorUUID
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.decide(ctx, leaveID, d)
	if err != nil {
		return LeaveResponse{}, err
	}

	s.notifier.Notify(ctx, l.EmployeeID, notification.TemplateLeaveRejected, map[string]string{
		"start_date": l.StartDate.Format(dateLayout),
		"end_date":   l.EndDate.Format(dateLayout),
		"note":       *d.Note,
	})
	return mapToResponse(*l), nil
}

func (s *service) decide(ctx context.Context, leaveID uuid.UUID, d approval.Decision) (*Leave, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(tx.Error))
		return nil, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	if err := d.Validate(l.Status); err != nil {
		s.logger.Warn("decide leave invalid transition",
			zap.String("leave_id", leaveID.String()),
			zap.String("from", l.Status.String()),
			zap.String("to", d.Target.String()),
		)
		return nil, err
	}

	rows, err := qtx.UpdateStatus(ctx, l, d)
	if err != nil {
		s.logger.Error("decide leave persist failed", zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		s.logger.Warn("decide leave lost race", zap.String("leave_id", leaveID.String()))
		return nil, approval.ErrInvalidTransition
	}

	l.Status = d.Target
	l.DecidedBy = &d.DecidedBy
	l.DecidedAt = &d.DecidedAt
	l.Note = d.Note
	l.Version++

	if d.Target == approval.StatusApprove {
		if err := s.ledger.WithTx(tx).Debit(ctx, l.EmployeeID, l.StartDate.Year(), l.AmountOfLeave, leavebalance.KindLeave, &l.ID); err != nil {
			s.logger.Warn("approve leave debit failed",
				zap.String("leave_id", leaveID.String()),
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := s.recordDecision(ctx, tx, *l); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("decide leave success",
		zap.String("leave_id", leaveID.String()),
		zap.String("status", l.Status.String()),
		zap.Int("days", l.AmountOfLeave),
	)
	return l, nil
}

func (s *service) recordDecision(ctx context.Context, tx *gorm.DB, l Leave) error {
	evt := events.LeaveDecidedEvent{
		EventType:  events.LeaveDecidedType,
		LeaveID:    l.ID.String(),
		Kind:       "leave",
		EmployeeID: l.EmployeeID.String(),
		Status:     l.Status.String(),
		Days:       l.AmountOfLeave,
		Note:       l.Note,
		OccurredAt: time.Now().UTC(),
	}
	if l.DecidedBy != nil {
		evt.DecidedBy = l.DecidedBy.String()
	}

	row, err := kafka.NewOutboxEvent("leave", l.ID.String(), events.LeaveDecidedType, events.LeaveDecisionTopic, contextutil.GetRequestID(ctx), evt)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("leave decided outbox persist failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) notifyApproved(ctx context.Context, l Leave) {
	year := l.StartDate.Year()
	balance := "-"
	if amount, err := s.ledger.Balance(ctx, l.EmployeeID, year); err == nil {
		balance = strconv.Itoa(amount)
	}
	s.notifier.Notify(ctx, l.EmployeeID, notification.TemplateLeaveApproved, map[string]string{
		"start_date": l.StartDate.Format(dateLayout),
		"end_date":   l.EndDate.Format(dateLayout),
		"days":       strconv.Itoa(l.AmountOfLeave),
		"year":       strconv.Itoa(year),
		"balance":    balance,
	})
}

func ensureWorking(ctx context.Context, repo Repository, employeeID uuid.UUID) error {
	exists, working, err := repo.EmployeeWorkingStatus(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return leaveerrors.ErrEmployeeNotFound
	}
	if !working {
		return leaveerrors.ErrEmployeeInactive
	}
	return nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapTypeToResponse(t TypeOfLeave) TypeOfLeaveResponse {
	return TypeOfLeaveResponse{
		ID:       t.ID.String(),
		Title:    t.Title,
		Category: string(t.Category),
	}
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		StartDate:     l.StartDate.Format(dateLayout),
		EndDate:       l.EndDate.Format(dateLayout),
		AmountOfLeave: l.AmountOfLeave,
		Reason:        l.Reason,
		Status:        l.Status.String(),
		CreatedBy:     l.CreatedBy.String(),
		Note:          l.Note,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
	}
	if l.TypeOfLeave != nil {
		t := mapTypeToResponse(*l.TypeOfLeave)
		resp.TypeOfLeave = &t
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
