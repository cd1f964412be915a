package core

// Router dispatches one slash command and the components whose custom IDs
// share its domain
type Router struct {
	domain     string
	commands   map[string]Handler
	components map[string]Handler
	middleware []Middleware
	ids        *CustomIDBuilder
}

// NewRouter creates a new domain router
func NewRouter(domain string) *Router {
	return &Router{
		domain:     domain,
		commands:   make(map[string]Handler),
		components: make(map[string]Handler),
		ids:        NewCustomIDBuilder(domain),
	}
}

// Use adds middleware to every route registered after the call
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Command registers the handler for the domain's slash command. An empty
// subcommand matches the bare command.
func (r *Router) Command(subcommand string, handler Handler) *Router {
	r.commands[subcommand] = MiddlewareChain(r.middleware...)(handler)
	return r
}

// CommandFunc registers a slash command handler function
func (r *Router) CommandFunc(subcommand string, fn HandlerFunc) *Router {
	return r.Command(subcommand, fn)
}

// Component registers a component handler for an action. "*" matches any action.
func (r *Router) Component(action string, handler Handler) *Router {
	r.components[action] = MiddlewareChain(r.middleware...)(handler)
	return r
}

// ComponentFunc registers a component handler function
func (r *Router) ComponentFunc(action string, fn HandlerFunc) *Router {
	return r.Component(action, fn)
}

// CustomIDs returns the custom ID builder for this router's domain
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.ids
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{router: r}
}

type routerHandler struct {
	router *Router
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.route(ctx) != nil
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.route(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

func (h *routerHandler) route(ctx *InteractionContext) Handler {
	r := h.router

	if ctx.IsCommand() {
		if ctx.GetCommandName() != r.domain {
			return nil
		}
		return r.commands[ctx.GetSubcommand()]
	}

	if ctx.IsComponent() {
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != r.domain {
			return nil
		}
		if handler, ok := r.components[customID.Action]; ok {
			return handler
		}
		return r.components["*"]
	}

	return nil
}
