package initwizard_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/orgkit/orgtree/cmd/orgtree/internal/initwizard"
)

func TestAccessibleRunner(t *testing.T) {
	t.Parallel()

	t.Run("runs form in accessible mode", func(t *testing.T) {
		t.Parallel()
		var output bytes.Buffer
		input := strings.NewReader("org-management\n")

		var value string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("AWS profile").Value(&value),
			),
		)

		runner := initwizard.NewAccessibleRunner(&output, input)
		err := runner.Run(form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != "org-management" {
			t.Errorf("expected value 'org-management', got %q", value)
		}
		if !strings.Contains(output.String(), "AWS profile") {
			t.Errorf("expected output to contain 'AWS profile', got %q", output.String())
		}
	})
}
