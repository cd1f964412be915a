package middleware

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
)

// ErrorMiddleware turns handler errors into ephemeral replies. Expected
// failures (bad input, expired sessions) are logged at debug, the rest at error.
func ErrorMiddleware(logger *zap.Logger) core.Middleware {
	logger = logging.OrNop(logger)

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			fields := append(interactionFields(ctx),
				zap.String("code", string(apperr.GetCode(err))),
				zap.Error(err))

			switch apperr.GetCode(err) {
			case apperr.CodeInvalidArgument, apperr.CodeInvalidSelection, apperr.CodeNotFound:
				logger.Debug("interaction rejected", fields...)
			default:
				logger.Error("interaction failed", fields...)
			}

			return &core.HandlerResult{
				Response: core.NewEphemeralResponse(core.UserMessage(err)),
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(logger *zap.Logger) core.Middleware {
	logger = logging.OrNop(logger)

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered in handler",
						append(interactionFields(ctx), zap.String("panic", fmt.Sprint(r)), zap.Stack("stack"))...)

					result = &core.HandlerResult{
						Response: core.NewEphemeralResponse("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func interactionFields(ctx *core.InteractionContext) []zap.Field {
	fields := []zap.Field{
		zap.String("user_id", ctx.UserID),
		zap.String("guild_id", ctx.GuildID),
	}

	if ctx.IsCommand() {
		fields = append(fields, zap.String("command", ctx.GetCommandName()))
	} else if ctx.IsComponent() {
		if customID, parseErr := core.ParseCustomID(ctx.GetCustomID()); parseErr == nil {
			fields = append(fields,
				zap.String("action", customID.Action),
				zap.String("session_id", customID.Target))
		}
	}

	return fields
}
