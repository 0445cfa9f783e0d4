// Package skycdkcdn provides a reusable CloudFront distribution construct
// serving a private S3 bucket.
//
// The distribution uses origin access control so the bucket never needs to
// be public. With a certificate and domain names it serves the deployment's
// custom domain; without them it serves the default cloudfront.net domain.
// The distribution ID and domain name are stored in SSM Parameter Store so
// the skyapp CLI can invalidate caches after publishing.
package skycdkcdn

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkparams"
)

const paramsNamespace = "cdn"

// DomainNameOutputKey is the CloudFormation output key for the distribution's domain name.
const DomainNameOutputKey = "CdnDomainName"

// CDN provides access to a CloudFront distribution serving site assets.
type CDN interface {
	// Distribution returns the CloudFront distribution.
	Distribution() awscloudfront.IDistribution

	// DomainName returns the domain the distribution serves: the first
	// custom domain when configured, the cloudfront.net domain otherwise.
	DomainName() *string
}

// Props configures the CDN construct.
type Props struct {
	// Origin is the private S3 bucket holding the site assets. Required.
	Origin awss3.IBucket

	// Certificate is the ACM certificate for the custom domains. Required
	// when DomainNames is set. CloudFront only accepts certificates from
	// us-east-1.
	Certificate awscertificatemanager.ICertificate

	// DomainNames are the custom domains the distribution serves.
	DomainNames []*string

	// SinglePageApp rewrites 403/404 responses to /index.html with a 200,
	// for client-side routed applications. Defaults to false.
	SinglePageApp bool
}

type cdn struct {
	distribution awscloudfront.IDistribution
	domainName   *string
}

// New creates a CDN construct serving the given bucket through CloudFront.
//
// The distribution redirects HTTP to HTTPS, compresses responses, and only
// allows GET/HEAD. Price class 100 (NA + EU edges) keeps cost predictable;
// widen it when latency outside those regions matters.
func New(scope constructs.Construct, props Props) CDN {
	scope = constructs.NewConstruct(scope, jsii.String("CDN"))
	con := &cdn{}

	distProps := &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.S3BucketOrigin_WithOriginAccessControl(props.Origin, nil),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_GET_HEAD(),
			CachedMethods:        awscloudfront.CachedMethods_CACHE_GET_HEAD(),
			Compress:             jsii.Bool(true),
		},
		DefaultRootObject: jsii.String("index.html"),
		EnableIpv6:        jsii.Bool(true),
		PriceClass:        awscloudfront.PriceClass_PRICE_CLASS_100,
	}

	if len(props.DomainNames) > 0 {
		if props.Certificate == nil {
			panic("skycdkcdn: DomainNames requires a Certificate")
		}
		distProps.DomainNames = &props.DomainNames
		distProps.Certificate = props.Certificate
	}

	if props.SinglePageApp {
		distProps.ErrorResponses = &[]*awscloudfront.ErrorResponse{
			{
				HttpStatus:         jsii.Number(403),
				ResponseHttpStatus: jsii.Number(200),
				ResponsePagePath:   jsii.String("/index.html"),
				Ttl:                awscdk.Duration_Minutes(jsii.Number(5)),
			},
			{
				HttpStatus:         jsii.Number(404),
				ResponseHttpStatus: jsii.Number(200),
				ResponsePagePath:   jsii.String("/index.html"),
				Ttl:                awscdk.Duration_Minutes(jsii.Number(5)),
			},
		}
	}

	con.distribution = awscloudfront.NewDistribution(scope, jsii.String("Distribution"), distProps)

	con.domainName = con.distribution.DistributionDomainName()
	if len(props.DomainNames) > 0 {
		con.domainName = props.DomainNames[0]
	}

	skycdkparams.Store(scope, "DistributionIDParam", paramsNamespace, "distribution-id",
		con.distribution.DistributionId())
	skycdkparams.Store(scope, "DomainNameParam", paramsNamespace, "domain-name",
		con.domainName)

	awscdk.NewCfnOutput(scope, jsii.String("DomainNameOutput"), &awscdk.CfnOutputProps{
		Key:         jsii.String(DomainNameOutputKey),
		Description: jsii.String("Domain name serving the site"),
		Value:       con.domainName,
	})

	return con
}

func (c *cdn) Distribution() awscloudfront.IDistribution {
	return c.distribution
}

func (c *cdn) DomainName() *string {
	return c.domainName
}
