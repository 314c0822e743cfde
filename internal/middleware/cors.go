package middleware

import (
	"context"
	"net/http"

	"github.com/watchearn/backend/pkg/router"
	"github.com/watchearn/backend/pkg/xcontext"
)

func AllowCors() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)
		if origin := req.Header.Get("Origin"); origin != "" {
			header := xcontext.HTTPWriter(ctx).Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		}

		// Answer a preflight here so it never reaches the authentication
		// middlewares behind this one.
		if req.Method == http.MethodOptions {
			xcontext.HTTPWriter(ctx).WriteHeader(http.StatusNoContent)
			return nil, router.ErrHandled
		}

		return nil, nil
	}
}
