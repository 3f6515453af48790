package setting

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	settingerrors "pengelola-cuti/internal/setting/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const SettingAllKey = "settings:all"

var keyPattern = regexp.MustCompile(`^[a-z0-9_.]{1,100}$`)

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]SettingResponse, error)
	Get(ctx context.Context, key string) (SettingResponse, error)
	Upsert(ctx context.Context, actorID, key string, req UpsertSettingRequest) (SettingResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]SettingResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SettingAllKey).Result(); err == nil {
			var resp []SettingResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SettingAllKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("list settings failed", zap.Error(err))
			return nil, err
		}

		resp := make([]SettingResponse, len(rows))
		for i, row := range rows {
			resp[i] = mapToResponse(row)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, SettingAllKey, jsonData, 30*time.Minute)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]SettingResponse), nil
}

// Get reads through the cached list so a single key lookup never hits the
// database while the cache is warm.
func (s *service) Get(ctx context.Context, key string) (SettingResponse, error) {
	if !keyPattern.MatchString(key) {
		return SettingResponse{}, settingerrors.ErrInvalidSettingKey
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return SettingResponse{}, err
	}
	for _, item := range all {
		if item.Key == key {
			return item, nil
		}
	}
	return SettingResponse{}, settingerrors.ErrSettingNotFound
}

func (s *service) Upsert(ctx context.Context, actorID, key string, req UpsertSettingRequest) (SettingResponse, error) {
	if !keyPattern.MatchString(key) {
		return SettingResponse{}, settingerrors.ErrInvalidSettingKey
	}
	s.logger.Debug("upsert setting requested", zap.String("key", key), zap.String("actor_id", actorID))

	row := &Setting{Key: key, Value: req.Value, UpdatedAt: time.Now().UTC()}
	if actor, err := uuid.Parse(actorID); err == nil {
		row.UpdatedBy = &actor
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("upsert setting persist failed", zap.String("key", key), zap.Error(err))
		return SettingResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, SettingAllKey).Err(); err != nil {
			s.logger.Error("failed to invalidate setting cache", zap.String("key", SettingAllKey), zap.Error(err))
		}
	}

	saved, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, settingerrors.ErrSettingNotFound
		}
		return SettingResponse{}, err
	}
	s.logger.Info("upsert setting success", zap.String("key", key))
	return mapToResponse(*saved), nil
}

func mapToResponse(s Setting) SettingResponse {
	return SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
