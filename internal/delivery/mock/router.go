package mock

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	deliverycontext "telemock/internal/delivery/context"
	domainerrors "telemock/internal/domain/errors"

	"github.com/pkg/errors"
)

// HandlerFunc serves one resource. Returned errors are rendered with Fail.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Group owns a slice of the resource namespace, e.g. every "AdminPHP/" path.
type Group struct {
	name   string
	prefix string
	routes map[string]map[string]HandlerFunc
}

// NewGroup creates a group whose routes live under prefix.
func NewGroup(name, prefix string) *Group {
	return &Group{
		name:   name,
		prefix: CleanResource(prefix),
		routes: make(map[string]map[string]HandlerFunc),
	}
}

// Name returns the group name used in logs.
func (g *Group) Name() string {
	return g.name
}

// Handle registers h for resource (relative to the group prefix) and methods.
func (g *Group) Handle(resource string, h HandlerFunc, methods ...string) {
	path := CleanResource(g.prefix + "/" + CleanResource(resource))
	if g.routes[path] == nil {
		g.routes[path] = make(map[string]HandlerFunc, len(methods))
	}
	for _, method := range methods {
		g.routes[path][method] = h
	}
}

// Routes lists "METHOD resource" pairs, sorted.
func (g *Group) Routes() []string {
	var out []string
	for path, methods := range g.routes {
		for method := range methods {
			out = append(out, method+" "+path)
		}
	}
	slices.Sort(out)

	return out
}

// Dispatch serves req when the group has a route for its resource and method.
func (g *Group) Dispatch(ctx context.Context, req *Request) (*Response, bool) {
	h, ok := g.routes[req.Resource][req.Method]
	if !ok {
		return nil, false
	}

	resp, err := h(ctx, req)
	if err != nil {
		return Fail(err), true
	}
	if resp == nil {
		return OK(nil), true
	}

	return resp, true
}

// Router dispatches requests through its groups in order. Handlers run one at
// a time; the artificial latency is spent outside the lock.
type Router struct {
	mu      sync.Mutex
	groups  []*Group
	latency time.Duration
	logger  *slog.Logger
}

// NewRouter creates a router over groups, tried in the given order.
func NewRouter(logger *slog.Logger, latency time.Duration, groups ...*Group) *Router {
	return &Router{
		groups:  groups,
		latency: max(latency, 0),
		logger:  logger,
	}
}

// Resolve dispatches req and then waits out the latency. Cancelling ctx
// during the wait abandons the response.
func (r *Router) Resolve(ctx context.Context, req *Request) (*Response, error) {
	resp := r.Dispatch(ctx, req)

	if r.latency == 0 {
		return resp, nil
	}

	timer := time.NewTimer(r.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case <-timer.C:
		return resp, nil
	}
}

// Dispatch serves req without latency. Unrouted resources get a 404 naming the
// resource; panics and unexpected errors become a 500.
func (r *Router) Dispatch(ctx context.Context, req *Request) (resp *Response) {
	ctx, _ = deliverycontext.EnsureRequestID(ctx, req.Header.Get(deliverycontext.HeaderXRequestID), r.logger)
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("mock handler panicked",
				slog.String("resource", req.Resource),
				slog.String("method", req.Method),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			resp = Fail(errors.WithStack(domainerrors.ErrInternalError))
		}
	}()

	for _, g := range r.groups {
		if out, ok := g.Dispatch(ctx, req); ok {
			r.logOutcome(logger, g.Name(), req, out)

			return out
		}
	}

	logger.Debug("unrouted mock request", slog.String("resource", req.Resource), slog.String("method", req.Method))

	return Fail(errors.WithStack(domainerrors.ErrNotImplemented.WithDetails(req.Resource)))
}

// Exclusive runs fn while no handler is running.
func (r *Router) Exclusive(fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn()
}

// Routes lists every registered route in group order.
func (r *Router) Routes() []string {
	var out []string
	for _, g := range r.groups {
		out = append(out, g.Routes()...)
	}

	return out
}

func (r *Router) logOutcome(logger *slog.Logger, group string, req *Request, resp *Response) {
	attrs := []any{
		slog.String("group", group),
		slog.String("resource", req.Resource),
		slog.String("method", req.Method),
		slog.Int("status", resp.Status),
	}

	switch {
	case resp.Status >= 500:
		logger.Error("mock request failed", append(attrs, slog.String("error", fmt.Sprintf("%+v", resp.Err())))...)
	case resp.Status >= 400:
		logger.Debug("mock request rejected", append(attrs, slog.String("message", resp.Message))...)
	default:
		logger.Debug("mock request served", attrs...)
	}
}
