package user

import (
	"context"
	"errors"
	"time"

	"pengelola-cuti/internal/auth"
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/shared/contextutil"
	usererrors "pengelola-cuti/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context, q ListUsersQuery) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	UpdateRole(ctx context.Context, actorID string, actorRole domain.Role, id string, req UpdateRoleRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID string, actorRole domain.Role, id string, isActive bool) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	ResetPassword(ctx context.Context, actorRole domain.Role, id string, req ResetPasswordRequest) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q ListUsersQuery) ([]UserResponse, int64, error) {
	filter := ListFilter{
		Q:        q.Q,
		IsActive: q.IsActive,
		Offset:   (q.Page - 1) * q.PageSize,
		Limit:    q.PageSize,
	}
	if q.Role != "" {
		role, ok := domain.ParseRole(q.Role)
		if !ok {
			return nil, 0, usererrors.ErrInvalidRole
		}
		filter.Role = string(role)
	}

	users, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, actorID string, actorRole domain.Role, id string, req UpdateRoleRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if err := guardTarget(actorID, actorRole, u, role); err != nil {
		return UserResponse{}, err
	}

	if err := s.repo.UpdateFields(ctx, u.ID, map[string]any{"role": role}); err != nil {
		l.Error("failed to update user role", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	u.Role = role

	l.Info("user role updated",
		zap.String("user_id", id),
		zap.String("role", string(role)),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID string, actorRole domain.Role, id string, isActive bool) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.find(ctx, id)
	if err != nil {
		l.Error("failed to find user", zap.Error(err))
		return UserResponse{}, err
	}
	if err := guardTarget(actorID, actorRole, u, u.Role); err != nil {
		return UserResponse{}, err
	}

	if err := s.repo.UpdateFields(ctx, u.ID, map[string]any{"is_active": isActive}); err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	u.IsActive = isActive

	l.Info("user status updated", zap.String("user_id", id), zap.Bool("is_active", isActive))
	return mapToResponse(*u), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	return s.setPassword(ctx, l, u.ID, req.NewPassword)
}

func (s *service) ResetPassword(ctx context.Context, actorRole domain.Role, id string, req ResetPasswordRequest) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if isPrivileged(u.Role) && actorRole != domain.RoleSuperAdmin {
		return usererrors.ErrPrivilegedAccount
	}

	return s.setPassword(ctx, l, u.ID, req.NewPassword)
}

func (s *service) setPassword(ctx context.Context, l *zap.Logger, id uuid.UUID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash new password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"password": string(hashed)}); err != nil {
		return mapRepositoryError(err)
	}
	l.Info("user password changed", zap.String("user_id", id.String()))
	return nil
}

func (s *service) find(ctx context.Context, id string) (*auth.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return u, nil
}

// guardTarget: tidak boleh mengubah akun sendiri, dan akun/role istimewa
// hanya boleh disentuh SUPER_ADMIN.
func guardTarget(actorID string, actorRole domain.Role, target *auth.User, newRole domain.Role) error {
	if target.ID.String() == actorID {
		return usererrors.ErrSelfModification
	}
	if (isPrivileged(target.Role) || isPrivileged(newRole)) && actorRole != domain.RoleSuperAdmin {
		return usererrors.ErrPrivilegedAccount
	}
	return nil
}

func isPrivileged(r domain.Role) bool {
	return r == domain.RoleSuperAdmin || r == domain.RoleAdmin
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	return err
}

func mapToResponse(u auth.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.EmployeeID != nil {
		v := u.EmployeeID.String()
		resp.EmployeeID = &v
	}
	return resp
}
