package config

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

type contextKey struct{}

// Resolved is a loaded configuration plus where it came from. Path is
// empty when the defaults are in use because no file was found.
type Resolved struct {
	Config Config
	Path   string
}

func WithContext(ctx context.Context, cfg Resolved) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

func FromContext(ctx context.Context) (Resolved, bool) {
	cfg, ok := ctx.Value(contextKey{}).(Resolved)
	return cfg, ok
}

var defaultFinder = NewFinder(NewLoader())

// Ensure returns config from context if present, otherwise resolves it
// from disk. Config is only resolved when an action needs it.
func Ensure(ctx context.Context) (context.Context, Resolved, error) {
	if cfg, ok := FromContext(ctx); ok {
		return ctx, cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ctx, Resolved{}, err
	}

	inner, path, err := defaultFinder.Find(cwd)
	if err != nil {
		return ctx, Resolved{}, err
	}

	cfg := Resolved{Config: inner, Path: path}
	return WithContext(ctx, cfg), cfg, nil
}

// ActionFunc is a command action that receives the config.
type ActionFunc func(ctx context.Context, cmd *cli.Command, cfg Resolved) error

// RunWithConfig wraps an ActionFunc to lazily resolve config when the
// action runs, not when showing help.
func RunWithConfig(fn ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ctx, cfg, err := Ensure(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, cfg)
	}
}
