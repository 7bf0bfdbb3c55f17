// Package logger provides the structured, levelled logger used across the
// shop, built on log/slog.
//
// WithCtx returns a logger pre-tagged with the request ID injected by the
// Logger middleware, so every line written while handling a request is
// correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID)
//	// → time=... level=INFO msg="order placed" request_id=a1b2c3d4 order_id=17
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/Austinkuria/E-commerce-Site/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	if uri := config.MongoLogURI(); uri != "" {
		if mh, err := newMongoHandler(uri, config.MongoLogDB(), handler); err == nil {
			handler = mh
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey stores a per-request *slog.Logger in the request context.
type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx by the Logger
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a request-scoped *slog.Logger into ctx. Called by the Logger
// middleware, not usually by application code.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
