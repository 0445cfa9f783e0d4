// Package skycdksite provides a reusable S3 bucket construct for web site
// assets.
//
// The bucket is private: content is served exclusively through a CloudFront
// distribution (see skycdkcdn), never directly from S3. The bucket name is
// stored in SSM Parameter Store so the skyapp CLI can publish assets to it
// after deployment.
package skycdksite

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkparams"
)

const paramsNamespace = "site"

// BucketNameOutputKey is the CloudFormation output key for the asset bucket name.
const BucketNameOutputKey = "SiteBucketName"

// Site provides access to the S3 bucket holding site assets.
type Site interface {
	// Bucket returns the asset bucket.
	Bucket() awss3.IBucket

	// GrantPublish grants write access to the asset bucket, for identities
	// that upload new site revisions.
	GrantPublish(grantee awsiam.IGrantable)
}

// Props configures the Site construct.
type Props struct {
	// Versioned enables object versioning on the asset bucket, allowing
	// rollbacks of published revisions. Defaults to false.
	Versioned *bool
}

type site struct {
	bucket awss3.IBucket
}

// New creates a Site construct with a private, encrypted asset bucket.
//
// The bucket blocks all public access and is encrypted with S3-managed
// keys. It is destroyed (including objects) with the stack: site assets are
// build artifacts, re-publishable from source.
func New(scope constructs.Construct, props Props) Site {
	scope = constructs.NewConstruct(scope, jsii.String("Site"))
	con := &site{}

	con.bucket = awss3.NewBucket(scope, jsii.String("AssetBucket"), &awss3.BucketProps{
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		EnforceSSL:        jsii.Bool(true),
		Versioned:         props.Versioned,
		RemovalPolicy:     awscdk.RemovalPolicy_DESTROY,
		AutoDeleteObjects: jsii.Bool(true),
	})

	skycdkparams.Store(scope, "AssetBucketNameParam", paramsNamespace, "asset-bucket-name",
		con.bucket.BucketName())

	awscdk.NewCfnOutput(scope, jsii.String("AssetBucketOutput"), &awscdk.CfnOutputProps{
		Key:         jsii.String(BucketNameOutputKey),
		Description: jsii.String("S3 bucket holding the published site assets"),
		Value:       con.bucket.BucketName(),
	})

	return con
}

func (s *site) Bucket() awss3.IBucket {
	return s.bucket
}

func (s *site) GrantPublish(grantee awsiam.IGrantable) {
	s.bucket.GrantReadWrite(grantee, jsii.String("*"))
}
