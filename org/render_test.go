package org_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/orgkit/orgtree/org"
)

func init() {
	// Keep golden output free of escape sequences.
	color.NoColor = true
}

func buildScenarioTree(t *testing.T) *org.Tree {
	t.Helper()
	tree, err := newBuilder(newScenarioClient()).Build(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func TestRenderFull(t *testing.T) {
	t.Parallel()

	tree := buildScenarioTree(t)
	var buf bytes.Buffer
	if err := org.NewRenderer(org.EnvAll).Render(&buf, tree, org.ModeFull); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := strings.Join([]string{
		"",
		"Organization ID: o-example",
		"",
		"/ Root OU [ Id: r-root ]",
		"│",
		"├── < ou-prod > | Prod",
		"│   └── < 111111111111 > | billing-prod [PROD]",
		"│",
		"└── < ou-dev > | Dev",
		"    └── < 222222222222 > | sandbox-dev [UNKNOWN]",
		"",
	}, "\n")

	if got := buf.String(); got != expected {
		t.Errorf("unexpected full render:\ngot:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestRenderUnitsOnly(t *testing.T) {
	t.Parallel()

	tree := buildScenarioTree(t)
	var buf bytes.Buffer
	if err := org.NewRenderer(org.EnvAll).Render(&buf, tree, org.ModeUnitsOnly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, name := range []string{"Prod", "Dev"} {
		if !strings.Contains(got, name) {
			t.Errorf("expected OU %q in units-only render", name)
		}
	}
	for _, name := range []string{"billing-prod", "sandbox-dev"} {
		if strings.Contains(got, name) {
			t.Errorf("account %q leaked into units-only render", name)
		}
	}
}

func TestRenderAccountsOnly(t *testing.T) {
	t.Parallel()

	t.Run("filter ALL lists every active account", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := org.NewRenderer(org.EnvAll).Render(&buf, buildScenarioTree(t), org.ModeAccountsOnly); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "01,billing-prod,111111111111,billing@example.com,PROD\n" +
			"02,sandbox-dev,222222222222,sandbox@example.com,UNKNOWN\n"
		if got := buf.String(); got != expected {
			t.Errorf("unexpected account list:\ngot:\n%s\nexpected:\n%s", got, expected)
		}
	})

	t.Run("filter PROD excludes other tags", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := org.NewRenderer(org.EnvProd).Render(&buf, buildScenarioTree(t), org.ModeAccountsOnly); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "01,billing-prod,111111111111,billing@example.com,PROD\n"
		if got := buf.String(); got != expected {
			t.Errorf("unexpected account list:\ngot:\n%s\nexpected:\n%s", got, expected)
		}
	})

	t.Run("filter NON-PROD excludes UNKNOWN", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := org.NewRenderer(org.EnvNonProd).Render(&buf, buildScenarioTree(t), org.ModeAccountsOnly); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := buf.String(); got != "" {
			t.Errorf("expected empty list, got:\n%s", got)
		}
	})
}

func TestRenderUnknownMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := org.NewRenderer(org.EnvAll).Render(&buf, buildScenarioTree(t), org.Mode(42)); err == nil {
		t.Fatal("expected error for unknown mode, got nil")
	}
}
