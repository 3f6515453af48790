package setting_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pengelola-cuti/internal/setting"
	settingerrors "pengelola-cuti/internal/setting/errors"
	"pengelola-cuti/internal/shared/testdb"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then overwrite invalidates cache", func(t *testing.T) {
		db := testdb.Open(t, &setting.Setting{})
		rdb, mock := redismock.NewClientMock()
		svc := setting.NewService(setting.NewRepository(db), rdb)
		actor := uuid.NewString()

		mock.ExpectDel(setting.SettingAllKey).SetVal(1)
		first, err := svc.Upsert(ctx, actor, "company_name", setting.UpsertSettingRequest{Value: "PT Maju"})
		require.NoError(t, err)
		assert.Equal(t, "PT Maju", first.Value)

		mock.ExpectDel(setting.SettingAllKey).SetVal(0)
		second, err := svc.Upsert(ctx, actor, "company_name", setting.UpsertSettingRequest{Value: "PT Maju Jaya"})
		require.NoError(t, err)
		assert.Equal(t, "PT Maju Jaya", second.Value)

		var count int64
		db.Model(&setting.Setting{}).Count(&count)
		assert.EqualValues(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative invalid key", func(t *testing.T) {
		db := testdb.Open(t, &setting.Setting{})
		svc := setting.NewService(setting.NewRepository(db), nil)

		_, err := svc.Upsert(ctx, "", "Company Name", setting.UpsertSettingRequest{Value: "x"})

		assert.ErrorIs(t, err, settingerrors.ErrInvalidSettingKey)
	})
}

func TestSettingService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		db := testdb.Open(t, &setting.Setting{})
		rdb, mock := redismock.NewClientMock()
		svc := setting.NewService(setting.NewRepository(db), rdb)
		cached := []setting.SettingResponse{{Key: "site_name", Value: "Cuti"}}
		payload, _ := json.Marshal(cached)
		mock.ExpectGet(setting.SettingAllKey).SetVal(string(payload))

		resp, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		db := testdb.Open(t, &setting.Setting{})
		updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, db.Create(&setting.Setting{Key: "site_name", Value: "Cuti", UpdatedAt: updated}).Error)

		rdb, mock := redismock.NewClientMock()
		svc := setting.NewService(setting.NewRepository(db), rdb)
		want := []setting.SettingResponse{{Key: "site_name", Value: "Cuti", UpdatedAt: updated.Format(time.RFC3339)}}
		payload, _ := json.Marshal(want)
		mock.ExpectGet(setting.SettingAllKey).RedisNil()
		mock.ExpectSet(setting.SettingAllKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingService_Get(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &setting.Setting{})
	svc := setting.NewService(setting.NewRepository(db), nil)
	_, err := svc.Upsert(ctx, "", "site_name", setting.UpsertSettingRequest{Value: "Cuti"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "site_name")
	require.NoError(t, err)
	assert.Equal(t, "Cuti", got.Value)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, settingerrors.ErrSettingNotFound)
}
