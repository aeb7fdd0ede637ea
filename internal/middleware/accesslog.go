package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tiny-go/internal/handlers"
	"go.uber.org/zap"
)

// AccessLog returns a Huma middleware that logs every request once it completes.
// It must run after RequestMeta to pick up the request ID.
func AccessLog(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		meta := handlers.RequestMetaFromContext(ctx.Context())

		logger.Info("http request",
			zap.String("request_id", meta.RequestID),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.URL().Path),
			zap.Int("status", ctx.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", meta.ClientIP),
			zap.String("user_agent", meta.UserAgent),
		)
	}
}
