package initwizard_test

import (
	"testing"

	"github.com/orgkit/orgtree/cmd/orgtree/internal/initwizard"
)

func TestFormBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("creates form with default values", func(t *testing.T) {
		t.Parallel()
		builder := initwizard.NewFormBuilder()
		var result initwizard.Result
		form := builder.Build(initwizard.DefaultResult(), &result)

		if form == nil {
			t.Fatal("expected form to be created")
		}
		if result.Profile != "default" {
			t.Errorf("expected default profile 'default', got %q", result.Profile)
		}
		if result.Region != "ap-southeast-2" {
			t.Errorf("expected default region 'ap-southeast-2', got %q", result.Region)
		}
		if result.ProdPattern != "-prod" || result.NonProdPattern != "-non-prod" {
			t.Errorf("unexpected default patterns: %+v", result)
		}
	})

	t.Run("uses provided defaults", func(t *testing.T) {
		t.Parallel()
		builder := initwizard.NewFormBuilder()
		defaults := initwizard.Result{
			Profile:        "management",
			Region:         "eu-central-1",
			ProdPattern:    "-live",
			NonProdPattern: "-staging",
		}

		var result initwizard.Result
		builder.Build(defaults, &result)

		if result != defaults {
			t.Errorf("expected result seeded with %+v, got %+v", defaults, result)
		}
	})
}
