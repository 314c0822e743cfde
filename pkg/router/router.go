package router

import (
	"context"
	"net/http"

	"github.com/watchearn/backend/config"
	"github.com/watchearn/backend/pkg/authenticator"
	"github.com/watchearn/backend/pkg/logger"
	"gorm.io/gorm"
)

// HandlerFunc is a typed endpoint. The router binds the request object from
// query parameters (GET) or a JSON body (POST) before calling the handler.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after a handler. It can derive a new context
// which replaces the current one, or return an error to stop the endpoint.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, no matter the endpoint
// succeeded or failed.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db          *gorm.DB
	cfg         config.Configs
	logger      logger.Logger
	tokenEngine authenticator.TokenEngine

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		db:          db,
		cfg:         cfg,
		logger:      logger,
		tokenEngine: authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
	}
}

// Branch creates a router sharing the underlying mux but carrying its own
// copy of middlewares and closers.
func (r *Router) Branch() *Router {
	branch := &Router{
		mux:         r.mux,
		db:          r.db,
		cfg:         r.cfg,
		logger:      r.logger,
		tokenEngine: r.tokenEngine,
	}

	branch.befores = append(branch.befores, r.befores...)
	branch.afters = append(branch.afters, r.afters...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}
