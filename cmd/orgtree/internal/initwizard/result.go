package initwizard

import "github.com/orgkit/orgtree/cmd/orgtree/internal/config"

// Result holds the answers collected by the wizard.
type Result struct {
	Profile        string
	Region         string
	ProdPattern    string
	NonProdPattern string
}

func DefaultResult() Result {
	return Result{
		Profile:        "default",
		Region:         "ap-southeast-2",
		ProdPattern:    "-prod",
		NonProdPattern: "-non-prod",
	}
}

// Config converts the answers into a writable configuration. The
// NON-PROD rule comes first so that patterns containing the PROD
// pattern still classify correctly.
func (r Result) Config() config.Config {
	return config.Config{
		Version: "1",
		Rules: []config.Rule{
			{Pattern: r.NonProdPattern, Environment: "NON-PROD"},
			{Pattern: r.ProdPattern, Environment: "PROD"},
		},
		Defaults: config.Defaults{
			Profile:     r.Profile,
			Region:      r.Region,
			Environment: "ALL",
		},
	}
}
