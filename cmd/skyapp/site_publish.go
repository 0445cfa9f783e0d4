package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/skylifthq/skyapp/cmd/internal/awsenv"
	"github.com/skylifthq/skyapp/cmd/internal/cdkctx"
	"github.com/skylifthq/skyapp/cmd/internal/projcfg"
	"github.com/skylifthq/skyapp/cmd/internal/sitesync"
	"github.com/skylifthq/skyapp/cmd/internal/ssmread"
	"github.com/skylifthq/skyapp/skycdk/skycdkparams"
	"go.uber.org/zap"
)

type PublishCmd struct {
	Deployment string `arg:"" required:"" help:"Deployment name (e.g., Stag, Prod)."`
}

// Run uploads the built site to every region's asset bucket and invalidates
// each region's distribution. Bucket and distribution are discovered from
// the parameters the deployment stacks publish.
func (c *PublishCmd) Run(cfg *projcfg.Config, env *awsenv.Env, log *zap.Logger) error {
	ctx := context.Background()

	if cfg.Site.Dist == "" {
		return errors.New("site.dist is not configured in skyapp.toml")
	}

	cctx, err := cdkctx.Load(cfg.CdkDir())
	if err != nil {
		return err
	}
	if err := validDeployment(cctx, c.Deployment); err != nil {
		return err
	}

	for _, region := range cctx.AllRegions() {
		if err := c.publishRegion(ctx, cfg, cctx, region, log); err != nil {
			return errors.Wrapf(err, "publishing to %s", region)
		}
	}
	return nil
}

func (c *PublishCmd) publishRegion(
	ctx context.Context, cfg *projcfg.Config, cctx *cdkctx.CDKContext, region string,
	log *zap.Logger,
) error {
	params, err := ssmread.NewClient(ctx, region)
	if err != nil {
		return err
	}

	bucket, err := ssmread.Value(ctx, params,
		skycdkparams.ParameterPath(cctx.Qualifier, c.Deployment, "site", "asset-bucket-name"))
	if err != nil {
		return errors.Wrap(err, "finding asset bucket; is the deployment stack deployed?")
	}

	// The distribution only exists once DNS is delegated; publish the
	// assets anyway so the site is ready the moment it goes live.
	distributionID, err := ssmread.Value(ctx, params,
		skycdkparams.ParameterPath(cctx.Qualifier, c.Deployment, "cdn", "distribution-id"))
	if err != nil {
		log.Debug("no distribution parameter", zap.String("region", region), zap.Error(err))
		distributionID = ""
	}

	syncer, err := sitesync.New(ctx, region, log)
	if err != nil {
		return err
	}

	uploaded, err := syncer.Publish(ctx, cfg.SiteDistDir(), bucket, distributionID)
	if err != nil {
		return err
	}

	log.Info("published site",
		zap.String("region", region),
		zap.String("bucket", bucket),
		zap.Int("files", uploaded),
		zap.Bool("invalidated", distributionID != ""))
	return nil
}
