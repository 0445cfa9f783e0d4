package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skylifthq/skyapp/cmd/internal/cdkctx"
	"github.com/skylifthq/skyapp/cmd/internal/cfnread"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"github.com/skylifthq/skyapp/skycdk/skycdkcdn"
	"github.com/skylifthq/skyapp/skycdk/skycdksite"
	"go.uber.org/zap"
)

type EndpointsCmd struct {
	Deployment string `arg:"" required:"" help:"Deployment name (e.g., Stag, Prod)."`
}

func (c *EndpointsCmd) Run(cfg *projcfg.Config, log *zap.Logger) error {
	ctx := context.Background()

	cctx, err := cdkctx.Load(cfg.CdkDir())
	if err != nil {
		return err
	}
	if err := validDeployment(cctx, c.Deployment); err != nil {
		return err
	}

	for _, region := range cctx.AllRegions() {
		stack := cctx.DeploymentStackName(region, c.Deployment)
		fmt.Fprintf(os.Stdout, "=== %s (%s) ===\n", stack, region)

		client, err := cfnread.NewClient(ctx, region)
		if err != nil {
			return err
		}
		outputs, err := cfnread.StackOutputs(ctx, client, stack)
		if err != nil {
			log.Debug("describe failed", zap.String("stack", stack), zap.Error(err))
			fmt.Fprintln(os.Stdout, "(not deployed)")
			continue
		}

		for _, key := range []string{skycdkcdn.DomainNameOutputKey, skycdksite.BucketNameOutputKey} {
			if value, ok := outputs[key]; ok {
				fmt.Fprintf(os.Stdout, "%-20s %s\n", key, value)
			}
		}
		fmt.Fprintln(os.Stdout)
	}

	return nil
}
