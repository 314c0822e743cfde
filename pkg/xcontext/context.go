package xcontext

import (
	"context"
	"net/http"

	"github.com/watchearn/backend/config"
	"github.com/watchearn/backend/pkg/authenticator"
	"github.com/watchearn/backend/pkg/logger"
	"gorm.io/gorm"
)

type keyType int

const (
	httpRequestKey keyType = iota
	httpWriterKey
	configsKey
	loggerKey
	dbKey
	tokenEngineKey
	requestUserIDKey
)

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	return ctx.Value(httpRequestKey).(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	return ctx.Value(httpWriterKey).(http.ResponseWriter)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey).(config.Configs)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func Logger(ctx context.Context) logger.Logger {
	return ctx.Value(loggerKey).(logger.Logger)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey, db)
}

func DB(ctx context.Context) *gorm.DB {
	return ctx.Value(dbKey).(*gorm.DB)
}

// WithDBTransaction replaces the database handle of ctx by a began
// transaction. The returned context must be finished by either
// WithCommitDBTransaction or WithRollbackDBTransaction.
func WithDBTransaction(ctx context.Context) context.Context {
	return WithDB(ctx, DB(ctx).Begin())
}

// WithCommitDBTransaction commits the current transaction of ctx. It is a
// no-op if the transaction was rolled back before.
func WithCommitDBTransaction(ctx context.Context) context.Context {
	DB(ctx).Commit()
	return ctx
}

// WithRollbackDBTransaction rollbacks the current transaction of ctx. It is a
// no-op if the transaction was committed before.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	DB(ctx).Rollback()
	return ctx
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	return ctx.Value(tokenEngineKey).(authenticator.TokenEngine)
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserIDKey, id)
}

// RequestUserID returns the id of the user sending the current request, or an
// empty string for an unauthenticated request.
func RequestUserID(ctx context.Context) string {
	id := ctx.Value(requestUserIDKey)
	if id == nil {
		return ""
	}

	return id.(string)
}
