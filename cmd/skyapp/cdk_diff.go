package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/skylifthq/skyapp/cmd/internal/cdkctx"
	"github.com/skylifthq/skyapp/cmd/internal/cmdexec"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"go.uber.org/zap"
)

type DiffCmd struct {
	Deployment string `arg:"" required:"" help:"Deployment name (e.g., Stag, Prod)."`
}

func (c *DiffCmd) Run(cfg *projcfg.Config, log *zap.Logger) error {
	cctx, err := cdkctx.Load(cfg.CdkDir())
	if err != nil {
		return err
	}
	if err := validDeployment(cctx, c.Deployment); err != nil {
		return err
	}

	exec, err := cmdexec.New(cfg.CdkDir(), log)
	if err != nil {
		return err
	}
	return exec.Run(context.Background(), "cdk", "diff", cctx.Qualifier+"*"+c.Deployment)
}

// validDeployment rejects deployment names the CDK context does not know,
// before the CDK toolkit silently matches zero stacks.
func validDeployment(cctx *cdkctx.CDKContext, name string) error {
	if cctx.IsValidDeployment(name) {
		return nil
	}
	return errors.Newf("unknown deployment %q, configured deployments: %v", name, cctx.Deployments)
}
