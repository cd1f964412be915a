package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
)

// DefaultDeferAfter leaves a second of Discord's 3 second acknowledgement window
const DefaultDeferAfter = 2 * time.Second

// DeferConfig configures the defer middleware
type DeferConfig struct {
	// DeferAfter defers if the handler has not returned within this duration.
	// Zero means DefaultDeferAfter.
	DeferAfter time.Duration

	Logger *zap.Logger
}

// DeferMiddleware acknowledges slow interactions before Discord gives up on
// them. Commands are deferred as ephemeral messages and components as message
// updates, so the final response edits the calculator in place.
func DeferMiddleware(config *DeferConfig) core.Middleware {
	if config == nil {
		config = &DeferConfig{}
	}
	after := config.DeferAfter
	if after <= 0 {
		after = DefaultDeferAfter
	}
	logger := logging.OrNop(config.Logger)

	type handlerResponse struct {
		result *core.HandlerResult
		err    error
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			responder := ctx.Responder()
			if responder == nil {
				return next.Handle(ctx)
			}

			responseChan := make(chan handlerResponse, 1)
			go func() {
				result, err := next.Handle(ctx)
				responseChan <- handlerResponse{result, err}
			}()

			timer := time.NewTimer(after)
			defer timer.Stop()

			select {
			case resp := <-responseChan:
				return resp.result, resp.err

			case <-timer.C:
				if err := responder.Defer(true); err != nil {
					logger.Warn("failed to defer interaction", append(interactionFields(ctx), zap.Error(err))...)
					resp := <-responseChan
					return resp.result, resp.err
				}

				logger.Debug("interaction deferred", interactionFields(ctx)...)

				resp := <-responseChan
				if resp.result != nil {
					resp.result.Deferred = true
				}
				return resp.result, resp.err
			}
		})
	}
}
