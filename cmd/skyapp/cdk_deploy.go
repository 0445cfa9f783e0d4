package main

import (
	"context"

	"github.com/skylifthq/skyapp/cmd/internal/cdkctx"
	"github.com/skylifthq/skyapp/cmd/internal/cmdexec"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"go.uber.org/zap"
)

type DeployCmd struct {
	Deployment string `arg:"" optional:"" help:"Deployment name (e.g., Stag, Prod). Empty deploys everything, including shared stacks."`
	Hotswap    bool   `help:"Enable CDK hotswap deployment for faster iterations."`
}

func (c *DeployCmd) Run(cfg *projcfg.Config, log *zap.Logger) error {
	ctx := context.Background()

	cctx, err := cdkctx.Load(cfg.CdkDir())
	if err != nil {
		return err
	}
	if c.Deployment != "" {
		if err := validDeployment(cctx, c.Deployment); err != nil {
			return err
		}
	}

	args := []string{"deploy", "--require-approval", "never"}
	if c.Hotswap {
		args = append(args, "--hotswap")
	}
	args = append(args, cctx.Qualifier+"*"+c.Deployment)

	exec, err := cmdexec.New(cfg.CdkDir(), log)
	if err != nil {
		return err
	}
	return exec.Run(ctx, "cdk", args...)
}
