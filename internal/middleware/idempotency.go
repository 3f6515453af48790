package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pengelola-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader   = "Idempotency-Key"
	idempotencyTTL      = 24 * time.Hour
	idempotencyLockTTL  = 30 * time.Second
	idempotencyLockFlag = "locked"
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func IdempotencyKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency me-replay response sukses untuk POST dengan Idempotency-Key yang sama.
// Request kedua yang datang saat request pertama masih berjalan ditolak 409.
func Idempotency(rdb *redis.Client, logger ...*zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("middleware.idempotency")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("middleware.idempotency")
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyKey(c.FullPath(), c.GetString(CtxUserID), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached cachedResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			l.Warn("idempotency lookup failed", zap.String("key", cacheKey), zap.Error(err))
		}

		isNew, err := rdb.SetNX(ctx, lockKey, idempotencyLockFlag, idempotencyLockTTL).Result()
		if err != nil {
			// Redis down: proses tetap jalan tanpa jaminan idempotensi.
			l.Warn("idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, "PROCESSING", "Transaksi Anda sedang diproses, mohon tunggu sebentar.")
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		if status := rec.Status(); status >= 200 && status < 300 {
			payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.buf.Bytes()})
			if err == nil {
				if err := rdb.Set(ctx, cacheKey, payload, idempotencyTTL).Err(); err != nil {
					l.Warn("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			l.Warn("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
