package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
)

// LoggingMiddleware logs every interaction with its duration
func LoggingMiddleware(logger *zap.Logger) core.Middleware {
	logger = logging.OrNop(logger)

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			fields := append(interactionFields(ctx), zap.Duration("duration", time.Since(start)))
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			logger.Info("interaction handled", fields...)

			return result, err
		})
	}
}
