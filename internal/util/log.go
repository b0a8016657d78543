package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const ctxKeyLogger contextKey = "logger"

// LogFromContext returns the logger stored in the context, falling back to the
// global zerolog logger if none was attached.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		if logger, ok := ctx.Value(ctxKeyLogger).(*zerolog.Logger); ok {
			return logger
		}

		return &log.Logger
	}

	return l
}

// WithLogger attaches a logger to the context, retrievable via LogFromContext.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(context.WithValue(ctx, ctxKeyLogger, &logger))
}
