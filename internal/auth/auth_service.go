package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "pengelola-cuti/internal/auth/errors"
	"pengelola-cuti/internal/domain"
	"pengelola-cuti/internal/shared/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	Register(ctx context.Context, actorRole domain.Role, req RegisterRequest) (AuthResponse, error)
	EnsureSuperAdmin(ctx context.Context, email, password string) (bool, error)
}

type service struct {
	repo    Repository
	refresh RefreshStore
	cfg     TokenConfig
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(repo Repository, refresh RefreshStore, cfg TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, refresh: refresh, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	// 1. Ambil user
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	// 3. Generate access + refresh token
	pair, err := s.issue(ctx, user)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))
	return pair, mapToResponse(user), nil
}

// RefreshToken memutar refresh token: token lama langsung hangus.
func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userIDStr, err := s.refresh.Consume(ctx, refreshToken)
	if err != nil {
		if !errors.Is(err, ErrRefreshNotFound) {
			s.logger.Error("consume refresh token failed", zap.Error(err))
			return TokenPair{}, AuthResponse{}, err
		}
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return TokenPair{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	pair, err := s.issue(ctx, user)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, mapToResponse(user), nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refresh.Revoke(ctx, refreshToken); err != nil {
		s.logger.Error("revoke refresh token failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, actorRole domain.Role, req RegisterRequest) (AuthResponse, error) {
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}
	// Hanya SUPER_ADMIN yang boleh membuat akun admin.
	if (role == domain.RoleSuperAdmin || role == domain.RoleAdmin) && actorRole != domain.RoleSuperAdmin {
		return AuthResponse{}, autherrors.ErrForbidden
	}

	user := &User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Name:     strings.TrimSpace(req.Name),
		Role:     role,
		IsActive: true,
	}

	if req.EmployeeID != "" {
		eID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidEmployeeID
		}
		exists, err := s.repo.EmployeeExists(ctx, eID)
		if err != nil {
			return AuthResponse{}, err
		}
		if !exists {
			return AuthResponse{}, autherrors.ErrEmployeeNotFound
		}
		user.EmployeeID = &eID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}
	user.Password = string(hashed)

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn("register user persist failed", zap.String("email", user.Email), zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register user success", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return mapToResponse(user), nil
}

// EnsureSuperAdmin membuat akun SUPER_ADMIN pertama bila belum ada.
func (s *service) EnsureSuperAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}
	count, err := s.repo.CountByRole(ctx, string(domain.RoleSuperAdmin))
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	_, err = s.Register(ctx, domain.RoleSuperAdmin, RegisterRequest{
		Email:    email,
		Name:     "Super Admin",
		Password: password,
		Role:     string(domain.RoleSuperAdmin),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) issue(ctx context.Context, user *User) (TokenPair, error) {
	claims := token.Claims{UserID: user.ID.String(), Role: string(user.Role)}
	if user.EmployeeID != nil {
		claims.EmployeeID = user.EmployeeID.String()
	}

	access, err := token.IssueAccess(s.cfg.Secret, claims, s.cfg.AccessTTL, s.now())
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	refresh, err := token.NewOpaque()
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	if err := s.refresh.Save(ctx, refresh, user.ID.String(), s.cfg.RefreshTTL); err != nil {
		s.logger.Error("store refresh token failed", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_user_email":
			return autherrors.ErrEmailAlreadyRegistered
		case "uq_user_employee":
			return autherrors.ErrEmployeeAlreadyLinked
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed: users.email"):
		return autherrors.ErrEmailAlreadyRegistered
	case strings.Contains(msg, "unique constraint failed: users.employee_id"):
		return autherrors.ErrEmployeeAlreadyLinked
	}
	return err
}

func mapToResponse(u *User) AuthResponse {
	resp := AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = u.EmployeeID.String()
	}
	return resp
}
