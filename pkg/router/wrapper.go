package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/xcontext"
)

// ErrHandled tells the router that a middleware already wrote the response
// and no handler should run. CORS preflights are answered this way.
var ErrHandled = errors.New("request handled by middleware")

type endpointState struct {
	response any
	err      error
}

type endpointStateKey struct{}

// Error returns the error the current endpoint finished with, if any. It is
// only meaningful inside After middlewares and Closers.
func Error(ctx context.Context) error {
	if state, ok := ctx.Value(endpointStateKey{}).(*endpointState); ok {
		return state.err
	}

	return nil
}

// Response returns the response object of the current endpoint. It is only
// meaningful inside After middlewares and Closers.
func Response(ctx context.Context) any {
	if state, ok := ctx.Value(endpointStateKey{}).(*endpointState); ok {
		return state.response
	}

	return nil
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := &endpointState{}

		ctx := r.Context()
		ctx = context.WithValue(ctx, endpointStateKey{}, state)
		ctx = xcontext.WithHTTPRequest(ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		state.err = func() error {
			// OPTIONS passes through to the middlewares so a CORS preflight
			// can be answered before any authentication check runs.
			if r.Method != method && r.Method != http.MethodOptions {
				return errorx.New(errorx.BadRequest, "Not supported method %s", r.Method)
			}

			var err error
			for _, before := range router.befores {
				ctx, err = runMiddleware(ctx, before)
				if err != nil {
					return err
				}
			}

			if r.Method == http.MethodOptions {
				return errorx.New(errorx.BadRequest, "Not supported method %s", r.Method)
			}

			req := new(Request)
			if err := bindRequest(r, method, req); err != nil {
				return errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			resp, err := handler(ctx, req)
			if err != nil {
				return err
			}

			state.response = resp
			for _, after := range router.afters {
				ctx, err = runMiddleware(ctx, after)
				if err != nil {
					return err
				}
			}

			return nil
		}()

		if errors.Is(state.err, ErrHandled) {
			state.err = nil
			return
		}

		if state.err != nil {
			writeJson(ctx, w, newErrorResponse(state.err))
		} else {
			writeJson(ctx, w, newResponse(state.response))
		}
	}
}

func runMiddleware(ctx context.Context, middleware MiddlewareFunc) (context.Context, error) {
	newCtx, err := middleware(ctx)
	if err != nil {
		return ctx, err
	}

	if newCtx != nil {
		return newCtx, nil
	}

	return ctx, nil
}
