package main

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/orgkit/orgtree/cmd/orgtree/internal/awsorg"
	"github.com/orgkit/orgtree/cmd/orgtree/internal/config"
	"github.com/orgkit/orgtree/org"
)

func treeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "ou-only",
			Usage: "Display organizational units only",
		},
		&cli.BoolFlag{
			Name:  "account-only",
			Usage: "Display the account list only",
		},
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "AWS profile of the organization management account (defaults from " + config.FileName + ")",
		},
		&cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "AWS region (defaults from " + config.FileName + ")",
		},
		&cli.StringFlag{
			Name:    "environment",
			Aliases: []string{"e"},
			Usage:   "Filter the account list by environment: ALL, PROD or NON-PROD",
		},
	}
}

type treeOptions struct {
	OUOnly      bool
	AccountOnly bool
	Profile     string
	Region      string
	Environment string
	Output      io.Writer
}

func runTree(ctx context.Context, cmd *cli.Command, cfg config.Resolved) error {
	return doTree(ctx, cfg, treeOptions{
		OUOnly:      cmd.Bool("ou-only"),
		AccountOnly: cmd.Bool("account-only"),
		Profile:     cmd.String("profile"),
		Region:      cmd.String("region"),
		Environment: cmd.String("environment"),
		Output:      os.Stdout,
	}, nil)
}

// doTree validates options, builds the tree and renders it. A non-nil
// client bypasses AWS client construction, for tests. All flag and
// config validation happens before any API call is made.
func doTree(ctx context.Context, cfg config.Resolved, opts treeOptions, client org.Client) error {
	mode, err := displayMode(opts.OUOnly, opts.AccountOnly)
	if err != nil {
		return err
	}

	filter, err := org.ParseEnvironment(
		firstNonEmpty(opts.Environment, cfg.Config.Defaults.Environment, string(org.EnvAll)))
	if err != nil {
		return err
	}

	if client == nil {
		profile := firstNonEmpty(opts.Profile, cfg.Config.Defaults.Profile, "default")
		region := firstNonEmpty(opts.Region, cfg.Config.Defaults.Region, "ap-southeast-2")

		client, err = awsorg.New(ctx, profile, region)
		if err != nil {
			return err
		}
	}

	builder := org.NewBuilder(client,
		org.NewClassifier(cfg.Config.ClassifierRules()), cfg.Config.AliasOverrides())

	tree, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	return org.NewRenderer(filter).Render(opts.Output, tree, mode)
}

func displayMode(ouOnly, accountOnly bool) (org.Mode, error) {
	switch {
	case ouOnly && accountOnly:
		return 0, errors.New("--ou-only and --account-only are mutually exclusive")
	case ouOnly:
		return org.ModeUnitsOnly, nil
	case accountOnly:
		return org.ModeAccountsOnly, nil
	default:
		return org.ModeFull, nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
