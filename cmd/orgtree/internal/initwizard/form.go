package initwizard

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

type FormBuilder interface {
	Build(defaults Result, result *Result) *huh.Form
}

type formBuilder struct{}

func NewFormBuilder() FormBuilder {
	return &formBuilder{}
}

func (b *formBuilder) Build(defaults Result, result *Result) *huh.Form {
	*result = defaults
	return huh.NewForm(
		huh.NewGroup(
			b.profileInput(&result.Profile),
			b.regionSelect(&result.Region),
			b.prodPatternInput(&result.ProdPattern),
			b.nonProdPatternInput(&result.NonProdPattern),
		),
	)
}

func (b *formBuilder) profileInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("AWS profile").
		Description("Profile of the organization management account in ~/.aws/config").
		Value(value).
		Validate(ValidateProfile)
}

func (b *formBuilder) regionSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("AWS region").
		Description("Region used for the Organizations API endpoint").
		Options(huh.NewOptions(KnownRegions()...)...).
		Value(value)
}

func (b *formBuilder) prodPatternInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("PROD name pattern").
		Description("Substring of account names that marks a production account").
		Value(value).
		Validate(ValidatePattern)
}

func (b *formBuilder) nonProdPatternInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("NON-PROD name pattern").
		Description("Substring of account names that marks a non-production account").
		Value(value).
		Validate(ValidatePattern)
}

// KnownRegions lists the commercial regions offered by the region
// select; any region works for the Organizations endpoint.
func KnownRegions() []string {
	return []string{
		"us-east-1",
		"us-east-2",
		"us-west-1",
		"us-west-2",
		"ca-central-1",
		"eu-west-1",
		"eu-west-2",
		"eu-west-3",
		"eu-central-1",
		"eu-north-1",
		"ap-southeast-1",
		"ap-southeast-2",
		"ap-northeast-1",
		"ap-northeast-2",
		"ap-south-1",
		"sa-east-1",
	}
}

func ValidateProfile(s string) error {
	if s == "" {
		return errors.New("profile is required")
	}
	if strings.ContainsAny(s, " \t") {
		return errors.New("profile cannot contain whitespace")
	}
	return nil
}

func ValidatePattern(s string) error {
	if s == "" {
		return errors.New("pattern is required")
	}
	if strings.TrimSpace(s) != s {
		return errors.New("pattern cannot start or end with whitespace")
	}
	return nil
}
