package middleware

import (
	"context"
	"strings"

	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/router"
	"github.com/watchearn/backend/pkg/xcontext"
)

// AuthVerifier resolves the request user from the access token carried in
// the Authorization header or the access token cookie. A request without a
// token passes through anonymously, endpoints that need a user gate on
// MustAuthenticated.
type AuthVerifier struct {
	useAccessToken bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (a *AuthVerifier) WithAccessToken() *AuthVerifier {
	a.useAccessToken = true
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if !a.useAccessToken {
			return nil, nil
		}

		token := getAccessToken(ctx)
		if token == "" {
			return nil, nil
		}

		var info model.AccessToken
		if err := xcontext.TokenEngine(ctx).Verify(token, &info); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.TokenExpired, "Your session is expired")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func getAccessToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func MustAuthenticated() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return nil, nil
	}
}
