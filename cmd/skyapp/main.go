package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/skylifthq/skyapp/cmd/internal/awsenv"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"github.com/skylifthq/skyapp/cmd/internal/skylog"
)

type App struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Cdk struct {
		Bootstrap BootstrapCmd `cmd:"" help:"Bootstrap CDK in the current AWS account/region."`
		Deploy    DeployCmd    `cmd:"" help:"Deploy CDK stacks for a deployment."`
		Diff      DiffCmd      `cmd:"" help:"Show CDK diff for a deployment."`
		Endpoints EndpointsCmd `cmd:"" help:"Show site endpoints for a deployment."`
	} `cmd:"" help:"CDK commands."`
	Site struct {
		Publish PublishCmd `cmd:"" help:"Upload the built site and invalidate the CDN."`
	} `cmd:"" help:"Site commands."`
	Params struct {
		Get ParamsGetCmd `cmd:"" help:"Read a value the stacks published to SSM Parameter Store."`
	} `cmd:"" help:"Parameter store commands."`
}

func main() {
	env, err := awsenv.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := projcfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var app App
	ctx := kong.Parse(&app,
		kong.Name("skyapp"),
		kong.Description("Skylift infrastructure CLI."),
	)

	logger := skylog.New(app.Verbose || env.Verbose)
	defer func() { _ = logger.Sync() }()

	if err := ctx.Run(cfg, env, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
