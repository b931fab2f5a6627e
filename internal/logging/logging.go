package logging

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

// New returns the process logger: JSON production output, or zap's
// development console output when debug is set.
func New(debug bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// Middleware puts l on every request context.
func Middleware(l *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLogger(r.Context(), l)))
		})
	}
}

func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, CtxKeyLogger, l)
}

// FromContext returns the request logger, or a no-op logger outside of
// Middleware.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(CtxKeyLogger).(*zap.SugaredLogger); ok {
		return l
	}

	return zap.NewNop().Sugar()
}
