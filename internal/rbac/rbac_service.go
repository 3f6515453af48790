package rbac

import (
	"context"
	"sort"
	"sync"

	"pengelola-cuti/internal/domain"
	rbacerrors "pengelola-cuti/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Reload(ctx context.Context) error
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	UpdateRolePermissions(ctx context.Context, role string, req UpdateRolePermissionsRequest) (RoleResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the policy once; call Reload after out-of-band changes.
func NewService(ctx context.Context, repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{repo: repo, enforcer: enforcer, logger: l}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Reload(ctx context.Context) error {
	grants, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		s.logger.Error("rbac load grants failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	// Load grouping policy
	for child, parent := range RoleParents {
		if _, err := s.enforcer.AddGroupingPolicy(string(child), string(parent)); err != nil {
			return err
		}
	}

	// Load permission policy
	for role, caps := range DefaultCapabilities {
		for _, c := range caps {
			if _, err := s.enforcer.AddPolicy(string(role), c.Resource, c.Action); err != nil {
				return err
			}
		}
	}
	for _, g := range grants {
		if _, err := s.enforcer.AddPolicy(string(g.Role), g.Resource, g.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("grants", len(grants)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(string(req.Role), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", string(req.Role)),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", string(req.Role)),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	grants, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return nil, err
	}

	byRole := map[domain.Role][]string{}
	for _, g := range grants {
		byRole[g.Role] = append(byRole[g.Role], Capability{g.Resource, g.Action}.String())
	}

	resp := make([]RoleResponse, 0, len(domain.AllRoles))
	for _, role := range domain.AllRoles {
		resp = append(resp, mapToResponse(role, byRole[role]))
	}
	return resp, nil
}

func (s *service) UpdateRolePermissions(ctx context.Context, role string, req UpdateRolePermissionsRequest) (RoleResponse, error) {
	r, ok := domain.ParseRole(role)
	if !ok {
		return RoleResponse{}, rbacerrors.ErrInvalidRole
	}
	if r == domain.RoleSuperAdmin {
		return RoleResponse{}, rbacerrors.ErrImmutableRole
	}

	seen := map[string]bool{}
	caps := make([]Capability, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		c, ok := ParseCapability(p)
		if !ok {
			return RoleResponse{}, rbacerrors.ErrInvalidPermission
		}
		if seen[c.String()] {
			continue
		}
		seen[c.String()] = true
		caps = append(caps, c)
	}

	if err := s.repo.ReplaceRolePermissions(ctx, r, caps); err != nil {
		s.logger.Error("rbac replace grants failed", zap.String("role", string(r)), zap.Error(err))
		return RoleResponse{}, err
	}
	if err := s.Reload(ctx); err != nil {
		return RoleResponse{}, err
	}

	granted := make([]string, len(caps))
	for i, c := range caps {
		granted[i] = c.String()
	}
	s.logger.Info("rbac role permissions updated", zap.String("role", string(r)), zap.Strings("permissions", granted))
	return mapToResponse(r, granted), nil
}

func mapToResponse(role domain.Role, granted []string) RoleResponse {
	builtin := make([]string, 0, len(DefaultCapabilities[role]))
	for _, c := range DefaultCapabilities[role] {
		builtin = append(builtin, c.String())
	}
	sort.Strings(builtin)
	if granted == nil {
		granted = []string{}
	}
	sort.Strings(granted)

	return RoleResponse{
		Role:     string(role),
		Inherits: string(RoleParents[role]),
		Builtin:  builtin,
		Granted:  granted,
	}
}
