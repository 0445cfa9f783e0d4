package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skylifthq/skyapp/cmd/internal/awsenv"
	"github.com/skylifthq/skyapp/cmd/internal/cdkctx"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"github.com/skylifthq/skyapp/cmd/internal/ssmread"
	"github.com/skylifthq/skyapp/skycdk/skycdkparams"
	"go.uber.org/zap"
)

type ParamsGetCmd struct {
	Deployment string `arg:"" required:"" help:"Deployment name, or 'shared' for shared-stack values."`
	Namespace  string `arg:"" required:"" help:"Parameter namespace (e.g., dns, site, cdn)."`
	Name       string `arg:"" required:"" help:"Parameter name (e.g., hosted-zone-id)."`

	Region string `help:"Region to read from. Defaults to the primary region."`
}

func (c *ParamsGetCmd) Run(cfg *projcfg.Config, env *awsenv.Env, log *zap.Logger) error {
	ctx := context.Background()

	cctx, err := cdkctx.Load(cfg.CdkDir())
	if err != nil {
		return err
	}

	deployment := c.Deployment
	if deployment == "shared" {
		deployment = ""
	} else if err := validDeployment(cctx, deployment); err != nil {
		return err
	}

	region := c.Region
	if region == "" {
		region = env.Region
	}
	if region == "" {
		region = cctx.PrimaryRegion
	}

	client, err := ssmread.NewClient(ctx, region)
	if err != nil {
		return err
	}

	path := skycdkparams.ParameterPath(cctx.Qualifier, deployment, c.Namespace, c.Name)
	log.Debug("reading parameter", zap.String("path", path), zap.String("region", region))

	value, err := ssmread.Value(ctx, client, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, value)
	return nil
}
