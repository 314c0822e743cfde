package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/config"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/pkg/logger"
	"github.com/watchearn/backend/pkg/router"
)

func Test_AllowCors_preflight(t *testing.T) {
	r := router.New(nil, config.Configs{}, logger.NewLogger())
	r.Before(AllowCors())
	r.Before(MustAuthenticated())
	router.POST(r, "/submitCompletion",
		func(ctx context.Context, req *model.SubmitCompletionRequest) (*model.SubmitCompletionResponse, error) {
			return &model.SubmitCompletionResponse{}, nil
		})

	// A preflight carries no credentials, it must be answered before the
	// authentication middleware runs.
	req := httptest.NewRequest(http.MethodOptions, "/submitCompletion", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	require.Empty(t, w.Body.String())

	// The actual request still passes through the whole chain.
	req = httptest.NewRequest(http.MethodPost, "/submitCompletion", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Body.String(), "You need to authenticate before")
}
