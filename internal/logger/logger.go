// Package logger wraps log/slog with a per-request logger stored in the
// request context.
//
//	log := logger.WithCtx(c.Request.Context())
//	log.Error("booking insert failed", "error", err)
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var L = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

// Setup replaces the base logger. Production gets JSON at INFO, everything
// else human-readable text at DEBUG.
func Setup(production bool, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if production {
		L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	} else {
		L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(L)
}

type ctxKey struct{}

// WithCtx returns the logger injected by the request middleware, or the base
// logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
			return log
		}
	}
	return L
}

func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
