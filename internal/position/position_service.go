package position

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	positionerrors "pengelola-cuti/internal/position/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// PositionAllKey menyimpan daftar jabatan (data master, jarang berubah).
const PositionAllKey = "positions:all"

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PositionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	post := &Position{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := qtx.Create(ctx, post); err != nil {
		s.logger.Error("create position persist failed", zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return PositionResponse{}, err
	}

	s.invalidate(ctx)
	return mapToResponse(*post), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	// Coba ambil dari Redis
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, PositionAllKey).Result()
		if err == nil {
			var resp []PositionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight supaya cache miss serentak cukup satu query
	v, err, _ := s.sf.Do(PositionAllKey, func() (interface{}, error) {
		positions, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(positions)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, PositionAllKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]PositionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*post), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PositionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	post, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	post.Name = strings.TrimSpace(req.Name)
	post.Description = req.Description

	if err := qtx.Update(ctx, post); err != nil {
		s.logger.Error("update position persist failed", zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return PositionResponse{}, err
	}

	s.invalidate(ctx)
	return mapToResponse(*post), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return positionerrors.ErrInvalidPositionID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inUse, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return positionerrors.ErrPositionInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	// Invalidasi cache dilakukan tepat setelah data di DB resmi terhapus
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PositionAllKey).Err(); err != nil {
		s.logger.Error("failed to invalidate position cache", zap.String("key", PositionAllKey), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_position_name" {
		return positionerrors.ErrPositionAlreadyExists
	}
	return err
}

func mapToResponse(post Position) PositionResponse {
	resp := PositionResponse{
		ID:          post.ID.String(),
		Name:        post.Name,
		Description: post.Description,
	}
	if !post.CreatedAt.IsZero() {
		resp.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	}
	if !post.UpdatedAt.IsZero() {
		resp.UpdatedAt = post.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(posts []Position) []PositionResponse {
	res := make([]PositionResponse, len(posts))
	for i, d := range posts {
		res[i] = mapToResponse(d)
	}
	return res
}
