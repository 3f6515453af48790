package middleware

import (
	"time"

	"pengelola-cuti/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger menempelkan logger ber-request_id ke context request dan
// mencatat satu baris access log setelah handler selesai.
// Pasang setelah RequestID; user_id baru tersedia untuk route yang melewati AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetString(CtxRequestID)

		reqLogger := logger.With(zap.String("request_id", rid))
		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("user_id", c.GetString(CtxUserID)),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
