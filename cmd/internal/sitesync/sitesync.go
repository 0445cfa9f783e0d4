// Package sitesync publishes a built site to its asset bucket and
// invalidates the CDN cache so the new revision serves immediately.
package sitesync

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// UploadAPI is the slice of the S3 client the syncer uses.
type UploadAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// InvalidateAPI is the slice of the CloudFront client the syncer uses.
type InvalidateAPI interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput,
		optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

// Syncer uploads site files and invalidates the distribution.
type Syncer struct {
	Uploads     UploadAPI
	Invalidates InvalidateAPI
	Log         *zap.Logger

	// Now stamps invalidation caller references; defaults to time.Now.
	Now func() time.Time
}

// New builds a Syncer with real AWS clients for the given region.
func New(ctx context.Context, region string, log *zap.Logger) (*Syncer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "loading AWS config")
	}
	return &Syncer{
		Uploads:     s3.NewFromConfig(cfg),
		Invalidates: cloudfront.NewFromConfig(cfg),
		Log:         log,
	}, nil
}

// Publish uploads every regular file under distDir to the bucket, keyed by
// its path relative to distDir, then invalidates the whole distribution.
// It returns the number of files uploaded. An empty distributionID skips
// the invalidation, for deployments whose CDN is not live yet.
//
// HTML files are marked no-cache so clients revalidate on every load;
// everything else (fingerprinted assets, typically) gets a long max-age.
func (s *Syncer) Publish(ctx context.Context, distDir, bucket, distributionID string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(distDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		key, err := filepath.Rel(distDir, path)
		if err != nil {
			return err
		}
		key = filepath.ToSlash(key)

		if err := s.upload(ctx, bucket, key, path); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, errors.Wrapf(err, "uploading %s to s3://%s", distDir, bucket)
	}
	if uploaded == 0 {
		return 0, errors.Newf("no files found under %s; is the site built?", distDir)
	}

	if distributionID == "" {
		s.Log.Info("no distribution for this deployment, skipping invalidation")
		return uploaded, nil
	}
	if err := s.invalidate(ctx, distributionID); err != nil {
		return uploaded, err
	}
	return uploaded, nil
}

func (s *Syncer) upload(ctx context.Context, bucket, key, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	s.Log.Debug("uploading file", zap.String("key", key), zap.String("bucket", bucket))
	_, err = s.Uploads.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         file,
		ContentType:  aws.String(contentType(key)),
		CacheControl: aws.String(cacheControl(key)),
	})
	return errors.Wrapf(err, "uploading %s", key)
}

func (s *Syncer) invalidate(ctx context.Context, distributionID string) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	s.Log.Debug("invalidating distribution", zap.String("distribution", distributionID))
	_, err := s.Invalidates.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionID),
		InvalidationBatch: &cftypes.InvalidationBatch{
			CallerReference: aws.String(fmt.Sprintf("sitesync-%d", now().UnixNano())),
			Paths: &cftypes.Paths{
				Quantity: aws.Int32(1),
				Items:    []string{"/*"},
			},
		},
	})
	return errors.Wrapf(err, "invalidating distribution %s", distributionID)
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func cacheControl(key string) string {
	if strings.HasSuffix(key, ".html") {
		return "no-cache"
	}
	return "public, max-age=31536000, immutable"
}
