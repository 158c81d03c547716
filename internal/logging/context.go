package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ComponentField names the subsystem behind an event: "theme",
// "colorscheme-watcher", "state-watcher", "web" and so on.
const ComponentField = "component"

// FromContext returns the logger carried by ctx. Without one, zerolog's
// disabled logger is returned, so library code can log unconditionally.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Component returns the context logger tagged with a component name.
func Component(ctx context.Context, name string) zerolog.Logger {
	return FromContext(ctx).With().Str(ComponentField, name).Logger()
}

// WithComponent is Component for code that passes the context along.
func WithComponent(ctx context.Context, name string) context.Context {
	return WithContext(ctx, Component(ctx, name))
}
