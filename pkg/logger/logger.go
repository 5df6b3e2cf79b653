// Package logger provides a structured, levelled logger built on log/slog.
//
// A per-request logger carrying the request_id is injected by the logging
// middleware; handlers and services retrieve it with WithCtx:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order delivered", "order_id", id)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/damassweet/damas/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ConnectMongo attaches the asynchronous MongoDB sink when LOG_MONGO_URI is
// configured. Log lines then go to both stdout and Mongo. Returns the handler
// so the caller can Close() it on shutdown; returns (nil, nil) when disabled.
func ConnectMongo() (*MongoHandler, error) {
	uri := config.LogMongoURI()
	if uri == "" {
		return nil, nil
	}

	mh, err := NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoColl())
	if err != nil {
		return nil, err
	}

	L = slog.New(NewMultiHandler(L.Handler(), mh))
	slog.SetDefault(L)
	return mh, nil
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx, or the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a pre-tagged *slog.Logger into ctx. Called by the
// logging middleware; application code rarely needs it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
