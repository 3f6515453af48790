package leavebalance

import (
	"context"
	"errors"
	"strings"
	"time"

	leavebalanceerrors "pengelola-cuti/internal/leavebalance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NegativePolicy decides whether a debit may take the balance below zero.
type NegativePolicy string

const (
	PolicyReject NegativePolicy = "reject"
	PolicyAllow  NegativePolicy = "allow"
)

func ParseNegativePolicy(v string) (NegativePolicy, error) {
	p := NegativePolicy(strings.ToLower(strings.TrimSpace(v)))
	switch p {
	case PolicyReject, PolicyAllow:
		return p, nil
	case "":
		return PolicyReject, nil
	}
	return "", leavebalanceerrors.ErrInvalidPolicy
}

// Ledger is the authoritative per-employee, per-year leave balance.
// Every mutation writes the running total and an append-only transaction
// through the same handle, so callers get atomicity by passing their tx to WithTx.
//
//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Ledger interface {
	WithTx(tx *gorm.DB) Ledger
	Open(ctx context.Context, employeeID uuid.UUID, year, amount int) error
	OpenIfMissing(ctx context.Context, employeeID uuid.UUID, year, amount int) (bool, error)
	Credit(ctx context.Context, employeeID uuid.UUID, year, amount int, kind Kind, ref *uuid.UUID) error
	Debit(ctx context.Context, employeeID uuid.UUID, year, amount int, kind Kind, ref *uuid.UUID) error
	Balance(ctx context.Context, employeeID uuid.UUID, year int) (int, error)
	Replay(ctx context.Context, employeeID uuid.UUID, year int) (int, error)
	Summary(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
	Adjust(ctx context.Context, actorID, employeeID string, req AdjustBalanceRequest) (BalanceResponse, error)
}

type ledger struct {
	db     *gorm.DB
	repo   Repository
	policy NegativePolicy
	logger *zap.Logger
}

func NewLedger(db *gorm.DB, repo Repository, policy NegativePolicy, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("leavebalance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.ledger")
	}
	if policy == "" {
		policy = PolicyReject
	}
	return &ledger{db: db, repo: repo, policy: policy, logger: l}
}

func (s *ledger) WithTx(tx *gorm.DB) Ledger {
	return s.withTx(tx)
}

func (s *ledger) withTx(tx *gorm.DB) *ledger {
	return &ledger{db: tx, repo: s.repo.WithTx(tx), policy: s.policy, logger: s.logger}
}

// entry is one ledger movement. Note and actor are set for manual adjustments.
type entry struct {
	employeeID uuid.UUID
	year       int
	amount     int
	kind       Kind
	ref        *uuid.UUID
	note       string
	actor      *uuid.UUID
}

func (s *ledger) Open(ctx context.Context, employeeID uuid.UUID, year, amount int) error {
	created, err := s.OpenIfMissing(ctx, employeeID, year, amount)
	if err != nil {
		return err
	}
	if !created {
		return leavebalanceerrors.ErrBalanceAlreadyOpen
	}
	return nil
}

func (s *ledger) OpenIfMissing(ctx context.Context, employeeID uuid.UUID, year, amount int) (bool, error) {
	if amount < 0 {
		return false, leavebalanceerrors.ErrInvalidAmount
	}

	created, err := s.repo.Insert(ctx, &AmountOfLeave{
		EmployeeID: employeeID,
		Year:       year,
		Amount:     amount,
	})
	if err != nil {
		s.logger.Error("open balance persist failed",
			zap.String("employee_id", employeeID.String()),
			zap.Int("year", year),
			zap.Error(err),
		)
		return false, err
	}
	if !created {
		return false, nil
	}

	if err := s.repo.AppendTransaction(ctx, &Transaction{
		EmployeeID: employeeID,
		Year:       year,
		Delta:      amount,
		Kind:       KindOpening,
	}); err != nil {
		return false, err
	}

	s.logger.Info("balance opened",
		zap.String("employee_id", employeeID.String()),
		zap.Int("year", year),
		zap.Int("amount", amount),
	)
	return true, nil
}

func (s *ledger) Credit(ctx context.Context, employeeID uuid.UUID, year, amount int, kind Kind, ref *uuid.UUID) error {
	return s.credit(ctx, entry{employeeID: employeeID, year: year, amount: amount, kind: kind, ref: ref})
}

func (s *ledger) Debit(ctx context.Context, employeeID uuid.UUID, year, amount int, kind Kind, ref *uuid.UUID) error {
	return s.debit(ctx, entry{employeeID: employeeID, year: year, amount: amount, kind: kind, ref: ref})
}

func (s *ledger) credit(ctx context.Context, e entry) error {
	if e.amount <= 0 {
		return leavebalanceerrors.ErrInvalidAmount
	}

	rows, err := s.repo.Increment(ctx, e.employeeID, e.year, e.amount)
	if err != nil {
		s.logger.Error("credit balance persist failed", zap.String("employee_id", e.employeeID.String()), zap.Error(err))
		return err
	}
	if rows == 0 {
		return leavebalanceerrors.ErrBalanceNotFound
	}

	return s.append(ctx, e, e.amount)
}

func (s *ledger) debit(ctx context.Context, e entry) error {
	if e.amount <= 0 {
		return leavebalanceerrors.ErrInvalidAmount
	}

	var (
		rows int64
		err  error
	)
	if s.policy == PolicyAllow {
		rows, err = s.repo.Increment(ctx, e.employeeID, e.year, -e.amount)
	} else {
		rows, err = s.repo.DecrementGuarded(ctx, e.employeeID, e.year, e.amount)
	}
	if err != nil {
		s.logger.Error("debit balance persist failed", zap.String("employee_id", e.employeeID.String()), zap.Error(err))
		return err
	}

	if rows == 0 {
		// Tell "no row" apart from "not enough days".
		if _, err := s.repo.FindByEmployeeYear(ctx, e.employeeID, e.year); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leavebalanceerrors.ErrBalanceNotFound
			}
			return err
		}
		s.logger.Warn("debit rejected by negative balance policy",
			zap.String("employee_id", e.employeeID.String()),
			zap.Int("year", e.year),
			zap.Int("amount", e.amount),
		)
		return leavebalanceerrors.ErrInsufficientBalance
	}

	return s.append(ctx, e, -e.amount)
}

func (s *ledger) append(ctx context.Context, e entry, delta int) error {
	if err := s.repo.AppendTransaction(ctx, &Transaction{
		EmployeeID:  e.employeeID,
		Year:        e.year,
		Delta:       delta,
		Kind:        e.kind,
		ReferenceID: e.ref,
		Note:        e.note,
		CreatedBy:   e.actor,
	}); err != nil {
		s.logger.Error("append balance transaction failed", zap.String("employee_id", e.employeeID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *ledger) Balance(ctx context.Context, employeeID uuid.UUID, year int) (int, error) {
	row, err := s.repo.FindByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, leavebalanceerrors.ErrBalanceNotFound
		}
		return 0, err
	}
	return row.Amount, nil
}

// Replay recomputes the balance from the transaction log alone.
func (s *ledger) Replay(ctx context.Context, employeeID uuid.UUID, year int) (int, error) {
	return s.repo.SumTransactions(ctx, employeeID, year)
}

func (s *ledger) Summary(ctx context.Context, employeeID string, year int) (BalanceResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	amount, err := s.Balance(ctx, id, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	txs, err := s.repo.ListTransactions(ctx, id, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	return mapToResponse(id, year, amount, txs), nil
}

func (s *ledger) Adjust(ctx context.Context, actorID, employeeID string, req AdjustBalanceRequest) (BalanceResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidActorID
	}
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if req.Delta == 0 {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidAmount
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return BalanceResponse{}, leavebalanceerrors.ErrReasonRequired
	}
	s.logger.Debug("adjust balance requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", employeeID),
		zap.Int("year", req.Year),
		zap.Int("delta", req.Delta),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("adjust balance begin tx failed", zap.Error(tx.Error))
		return BalanceResponse{}, tx.Error
	}
	defer tx.Rollback()

	e := entry{employeeID: id, year: req.Year, kind: KindAdjustment, note: reason, actor: &actorUUID}
	qtx := s.withTx(tx)
	if req.Delta > 0 {
		e.amount = req.Delta
		err = qtx.credit(ctx, e)
	} else {
		e.amount = -req.Delta
		err = qtx.debit(ctx, e)
	}
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("adjust balance commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	s.logger.Info("adjust balance success",
		zap.String("actor_id", actorID),
		zap.String("employee_id", employeeID),
		zap.Int("delta", req.Delta),
	)

	return s.Summary(ctx, employeeID, req.Year)
}

func mapToResponse(employeeID uuid.UUID, year, amount int, txs []Transaction) BalanceResponse {
	resp := BalanceResponse{
		EmployeeID:   employeeID.String(),
		Year:         year,
		Amount:       amount,
		Transactions: make([]TransactionResponse, len(txs)),
	}
	for i, t := range txs {
		item := TransactionResponse{
			ID:        t.ID.String(),
			Delta:     t.Delta,
			Kind:      string(t.Kind),
			Note:      t.Note,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		}
		if t.ReferenceID != nil {
			v := t.ReferenceID.String()
			item.ReferenceID = &v
		}
		if t.CreatedBy != nil {
			v := t.CreatedBy.String()
			item.CreatedBy = &v
		}
		resp.Transactions[i] = item
	}
	return resp
}
