package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/orgkit/orgtree/cmd/orgtree/internal/config"
	"github.com/orgkit/orgtree/cmd/orgtree/internal/initwizard"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create an " + config.FileName + " with your naming convention and defaults",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "accessible",
				Usage: "Run the wizard in accessible (non-TUI) mode",
			},
		},
		Action: runInit,
	}
}

func runInit(_ context.Context, cmd *cli.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	path := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("%s already exists, remove it first to re-run init", path)
	}

	var runner initwizard.FormRunner = initwizard.NewInteractiveRunner()
	if cmd.Bool("accessible") {
		runner = initwizard.NewAccessibleRunner(os.Stdout, os.Stdin)
	}

	wizard := initwizard.New(initwizard.NewFormBuilder(), runner)
	result, err := wizard.Run(initwizard.DefaultResult())
	if err != nil {
		return err
	}

	if err := config.WriteToFile(cwd, result.Config(), config.NewWriter()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
