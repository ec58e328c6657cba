package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every entry logged through ctx with a component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return with(ctx, "component", component)
}

// WithSite tags every entry logged through ctx with the site being opened.
func WithSite(ctx context.Context, url string) context.Context {
	return with(ctx, "site_url", url)
}

func with(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, child)
}
