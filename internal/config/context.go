package config

import (
	"context"

	"github.com/eazysvn/eazysvn/internal/types"
)

type ctxKey struct{}

// NewContext returns a context carrying cfg for the duration of one
// command invocation.
func NewContext(ctx context.Context, cfg *types.Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config carried by ctx, or the defaults when
// none was attached.
func FromContext(ctx context.Context) *types.Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*types.Config); ok {
		return cfg
	}
	return &types.Config{
		SvnPath:  types.DefaultSvnPath,
		LogLevel: types.DefaultLogLevel,
	}
}
