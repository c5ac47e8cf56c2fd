package config_test

import (
	"context"
	"testing"

	"github.com/orgkit/orgtree/cmd/orgtree/internal/config"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("WithContext and FromContext", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		cfg := config.Resolved{
			Config: config.Default(),
			Path:   "/test/dir/.orgtree.yml",
		}

		ctx = config.WithContext(ctx, cfg)
		got, ok := config.FromContext(ctx)

		if !ok {
			t.Fatal("expected config to be found")
		}
		if got.Config.Version != cfg.Config.Version {
			t.Errorf("expected version %q, got %q", cfg.Config.Version, got.Config.Version)
		}
		if got.Path != cfg.Path {
			t.Errorf("expected path %q, got %q", cfg.Path, got.Path)
		}
	})

	t.Run("FromContext returns false when not set", func(t *testing.T) {
		t.Parallel()
		_, ok := config.FromContext(context.Background())
		if ok {
			t.Error("expected config to not be found")
		}
	})

	t.Run("Ensure returns existing config from context", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		cfg := config.Resolved{
			Config: config.Default(),
			Path:   "/test/dir/.orgtree.yml",
		}

		ctx = config.WithContext(ctx, cfg)
		newCtx, got, err := config.Ensure(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Path != cfg.Path {
			t.Errorf("expected path %q, got %q", cfg.Path, got.Path)
		}
		if newCtx != ctx {
			t.Error("expected same context when config already present")
		}
	})
}
