package specialleave

import (
	"context"
	"errors"
	"strings"
	"time"

	"pengelola-cuti/internal/approval"
	"pengelola-cuti/internal/events"
	"pengelola-cuti/internal/messaging/kafka"
	"pengelola-cuti/internal/notification"
	"pengelola-cuti/internal/shared/contextutil"
	specialleaveerrors "pengelola-cuti/internal/specialleave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=specialleave_service.go -destination=mock/specialleave_service_mock.go -package=mock
type Service interface {
	CreateCatalog(ctx context.Context, req CreateSpecialLeaveRequest) (SpecialLeaveResponse, error)
	ListCatalog(ctx context.Context) ([]SpecialLeaveResponse, error)

	Create(ctx context.Context, actorID, employeeID string, req CreateEmployeeSpecialLeaveRequest) (EmployeeSpecialLeaveResponse, error)
	GetAll(ctx context.Context, query ListQuery) ([]EmployeeSpecialLeaveResponse, int64, error)
	Approve(ctx context.Context, actorID, id string) (EmployeeSpecialLeaveResponse, error)
	Reject(ctx context.Context, actorID, id, note string) (EmployeeSpecialLeaveResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	notifier notification.Notifier
	logger   *zap.Logger
}

// NewService wires the special leave workflow. Special leave has its own
// entitlement per catalog entry and never touches the annual ledger.
func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, notifier notification.Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("specialleave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("specialleave.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, notifier: notifier, logger: l}
}

func (s *service) CreateCatalog(ctx context.Context, req CreateSpecialLeaveRequest) (SpecialLeaveResponse, error) {
	gender := Gender(strings.ToUpper(strings.TrimSpace(req.Gender)))
	if !gender.Valid() {
		return SpecialLeaveResponse{}, specialleaveerrors.ErrInvalidGender
	}
	dayType := DayType(strings.ToUpper(strings.TrimSpace(req.TypeOfDay)))
	if !dayType.Valid() {
		return SpecialLeaveResponse{}, specialleaveerrors.ErrInvalidTypeOfDay
	}

	item := &SpecialLeave{
		Title:     strings.TrimSpace(req.Title),
		Gender:    gender,
		Amount:    req.Amount,
		TypeOfDay: dayType,
	}
	if err := s.repo.CreateCatalog(ctx, item); err != nil {
		s.logger.Error("create special leave persist failed", zap.Error(err))
		return SpecialLeaveResponse{}, mapCatalogError(err)
	}
	s.logger.Info("create special leave success", zap.String("special_leave_id", item.ID.String()))
	return mapCatalogToResponse(*item), nil
}

func (s *service) ListCatalog(ctx context.Context) ([]SpecialLeaveResponse, error) {
	items, err := s.repo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]SpecialLeaveResponse, len(items))
	for i, item := range items {
		resp[i] = mapCatalogToResponse(item)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, actorID, employeeID string, req CreateEmployeeSpecialLeaveRequest) (EmployeeSpecialLeaveResponse, error) {
	s.logger.Debug("create employee special leave requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", employeeID),
		zap.String("special_leave_id", req.SpecialLeaveID),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidEmployeeID
	}
	catalogUUID, err := uuid.Parse(req.SpecialLeaveID)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidSpecialLeaveID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidDateRange
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee special leave begin tx failed", zap.Error(tx.Error))
		return EmployeeSpecialLeaveResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindCatalogByID(ctx, catalogUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrSpecialLeaveNotFound
		}
		return EmployeeSpecialLeaveResponse{}, err
	}

	employee, err := qtx.FindEmployee(ctx, employeeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrEmployeeNotFound
		}
		return EmployeeSpecialLeaveResponse{}, err
	}
	if !employee.IsWorking {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrEmployeeInactive
	}
	if !item.Gender.Allows(employee.Gender) {
		s.logger.Warn("create employee special leave gender not eligible",
			zap.String("employee_id", employeeID),
			zap.String("required", string(item.Gender)),
		)
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrGenderNotEligible
	}

	days := item.TypeOfDay.Count(startDate, endDate)
	if days == 0 {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrNoDaysInRange
	}
	if days > item.Amount {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrExceedsEntitlement
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, employeeUUID, startDate, endDate)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, err
	}
	if overlap {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrOverlap
	}

	e := &EmployeeSpecialLeave{
		EmployeeID:     employeeUUID,
		SpecialLeaveID: catalogUUID,
		StartDate:      startDate,
		EndDate:        endDate,
		Days:           days,
		Reason:         strings.TrimSpace(req.Reason),
		Status:         approval.StatusWaiting,
		CreatedBy:      actorUUID,
	}
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee special leave persist failed", zap.Error(err))
		return EmployeeSpecialLeaveResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee special leave commit failed", zap.Error(err))
		return EmployeeSpecialLeaveResponse{}, err
	}
	s.logger.Info("create employee special leave success",
		zap.String("id", e.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("days", days),
	)

	e.SpecialLeave = item
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, query ListQuery) ([]EmployeeSpecialLeaveResponse, int64, error) {
	filter := ListFilter{
		Offset: max((query.Page-1)*query.PageSize, 0),
		Limit:  query.PageSize,
	}
	if query.EmployeeID != "" {
		id, err := uuid.Parse(query.EmployeeID)
		if err != nil {
			return nil, 0, specialleaveerrors.ErrInvalidEmployeeID
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

	items, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]EmployeeSpecialLeaveResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp, total, nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (EmployeeSpecialLeaveResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidActorID
	}
	requestID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidRequestID
	}

	e, err := s.decide(ctx, requestID, approval.Approve(actorUUID, time.Now()))
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, err
	}

	s.notifier.Notify(ctx, e.EmployeeID, notification.TemplateSpecialLeaveApproved, notifyFields(*e))
	return mapToResponse(*e), nil
}

func (s *service) Reject(ctx context.Context, actorID, id, note string) (EmployeeSpecialLeaveResponse, error) {
	d, err := approval.Reject(uuid.Nil, note, time.Now())
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, err
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidActorID
	}
	d.DecidedBy = actorUUID
	requestID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, specialleaveerrors.ErrInvalidRequestID
	}

	e, err := s.decide(ctx, requestID, d)
	if err != nil {
		return EmployeeSpecialLeaveResponse{}, err
	}

	fields := notifyFields(*e)
	fields["note"] = *d.Note
	s.notifier.Notify(ctx, e.EmployeeID, notification.TemplateSpecialLeaveRejected, fields)
	return mapToResponse(*e), nil
}

func (s *service) decide(ctx context.Context, id uuid.UUID, d approval.Decision) (*EmployeeSpecialLeave, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("decide special leave begin tx failed", zap.Error(tx.Error))
		return nil, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, specialleaveerrors.ErrRequestNotFound
		}
		return nil, err
	}
	if err := d.Validate(e.Status); err != nil {
		return nil, err
	}

	rows, err := qtx.UpdateStatus(ctx, e, d)
	if err != nil {
		s.logger.Error("decide special leave persist failed", zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		return nil, approval.ErrInvalidTransition
	}

	e.Status = d.Target
	e.DecidedBy = &d.DecidedBy
	e.DecidedAt = &d.DecidedAt
	e.Note = d.Note
	e.Version++

	row, err := kafka.NewOutboxEvent("special_leave", e.ID.String(), events.LeaveDecidedType, events.LeaveDecisionTopic,
		contextutil.GetRequestID(ctx), events.LeaveDecidedEvent{
			EventType:  events.LeaveDecidedType,
			LeaveID:    e.ID.String(),
			Kind:       "special_leave",
			EmployeeID: e.EmployeeID.String(),
			Status:     e.Status.String(),
			Days:       e.Days,
			DecidedBy:  d.DecidedBy.String(),
			Note:       e.Note,
			OccurredAt: d.DecidedAt,
		})
	if err != nil {
		return nil, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("special leave decided outbox persist failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("decide special leave commit failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("decide special leave success",
		zap.String("id", id.String()),
		zap.String("status", e.Status.String()),
	)
	return e, nil
}

func notifyFields(e EmployeeSpecialLeave) map[string]string {
	title := ""
	if e.SpecialLeave != nil {
		title = e.SpecialLeave.Title
	}
	return map[string]string{
		"title":      title,
		"start_date": e.StartDate.Format(dateLayout),
		"end_date":   e.EndDate.Format(dateLayout),
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, specialleaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapCatalogError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "uq_special_leave_title") ||
		strings.Contains(msg, "unique constraint failed: special_leaves.title") {
		return specialleaveerrors.ErrSpecialLeaveExists
	}
	return err
}

func mapCatalogToResponse(s SpecialLeave) SpecialLeaveResponse {
	return SpecialLeaveResponse{
		ID:        s.ID.String(),
		Title:     s.Title,
		Gender:    string(s.Gender),
		Amount:    s.Amount,
		TypeOfDay: string(s.TypeOfDay),
	}
}

func mapToResponse(e EmployeeSpecialLeave) EmployeeSpecialLeaveResponse {
	resp := EmployeeSpecialLeaveResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		StartDate:  e.StartDate.Format(dateLayout),
		EndDate:    e.EndDate.Format(dateLayout),
		Days:       e.Days,
		Reason:     e.Reason,
		Status:     e.Status.String(),
		CreatedBy:  e.CreatedBy.String(),
		Note:       e.Note,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
	if e.SpecialLeave != nil {
		c := mapCatalogToResponse(*e.SpecialLeave)
		resp.SpecialLeave = &c
	}
	if e.DecidedBy != nil {
		v := e.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if e.DecidedAt != nil {
		v := e.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
