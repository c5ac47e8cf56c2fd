package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/orgkit/orgtree/cmd/orgtree/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "orgtree",
		Usage:   "Display an AWS Organization tree or its active accounts",
		Version: Version,
		Flags:   treeFlags(),
		Action:  config.RunWithConfig(runTree),
		Commands: []*cli.Command{
			initCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.HiRedString("Error:"), err.Error())
		os.Exit(1)
	}
}
