package main

import (
	"context"

	"github.com/skylifthq/skyapp/cmd/internal/awsenv"
	"github.com/skylifthq/skyapp/cmd/internal/cmdexec"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"go.uber.org/zap"
)

type BootstrapCmd struct{}

func (c *BootstrapCmd) Run(cfg *projcfg.Config, env *awsenv.Env, log *zap.Logger) error {
	exec, err := cmdexec.New(cfg.CdkDir(), log)
	if err != nil {
		return err
	}
	return exec.Run(context.Background(), "cdk", "bootstrap")
}
