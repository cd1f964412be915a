package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler
	logger       *zap.Logger

	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline(logger *zap.Logger) *Pipeline {
	return &Pipeline{
		errorHandler: defaultErrorHandler,
		logger:       logging.OrNop(logger).Named("pipeline"),
	}
}

// Register adds handlers to the pipeline, wrapped in the middleware added so far
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		p.handlers = append(p.handlers, MiddlewareChain(p.middleware...)(h))
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// Execute runs the pipeline for a Discord interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return p.Dispatch(NewInteractionContext(ctx, s, i), NewDiscordResponder(s, i))
}

// Dispatch runs the first handler that accepts the interaction and sends its response
func (p *Pipeline) Dispatch(ic *InteractionContext, responder InteractionResponder) error {
	ic.responder = responder

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(ic) {
			continue
		}

		result, err := handler.Handle(ic)
		if err != nil {
			result = errorHandler(ic, err)
		}
		if result == nil || result.Response == nil {
			return nil
		}

		if err := sendResponse(responder, result); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
		return nil
	}

	p.logger.Warn("no handler for interaction",
		zap.String("command", ic.GetCommandName()),
		zap.String("custom_id", ic.GetCustomID()))

	if responder.HasResponded() {
		return nil
	}
	return responder.Respond(NewEphemeralResponse("I don't know how to handle that command."))
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}
	return responder.Respond(result.Response)
}

func defaultErrorHandler(_ *InteractionContext, err error) *HandlerResult {
	return &HandlerResult{
		Response: NewEphemeralResponse(UserMessage(err)),
	}
}

// MiddlewareChain creates a single middleware from multiple middleware.
// The first middleware is the outermost.
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
