// Package skycdkcerts provides a reusable ACM wildcard certificate construct
// for multi-region CDK deployments.
//
// The certificate uses DNS validation via the provided Route53 hosted zone.
// This construct should only be created after DNS delegation is complete and
// the zone is resolvable, otherwise validation hangs until it times out.
package skycdkcerts

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkparams"
)

const paramsNamespace = "certs"

// Certificates provides access to a wildcard ACM certificate.
type Certificates interface {
	// WildcardCertificate returns the ACM wildcard certificate (*.domain.com).
	// Use this for CloudFront, API Gateway, ALB, etc. CloudFront requires
	// the certificate to live in us-east-1, so a CDN with a custom domain
	// needs us-east-1 as the primary region.
	WildcardCertificate() awscertificatemanager.ICertificate
}

// Props configures the Certificates construct.
type Props struct {
	// HostedZone is the Route53 hosted zone used for DNS validation.
	// Required.
	HostedZone awsroute53.IHostedZone
}

type certificates struct {
	certificate awscertificatemanager.ICertificate
}

// New creates a Certificates construct with a wildcard ACM certificate.
//
// The certificate is created for *.{zoneName} and uses DNS validation
// via the provided hosted zone. Each region gets its own certificate since
// ACM certificates are regional; all validate against the same zone.
func New(scope constructs.Construct, props Props) Certificates {
	scope = constructs.NewConstruct(scope, jsii.String("Certificates"))
	con := &certificates{}

	con.certificate = awscertificatemanager.NewCertificate(scope, jsii.String("WildcardCertificate"),
		&awscertificatemanager.CertificateProps{
			DomainName: jsii.String("*." + *props.HostedZone.ZoneName()),
			Validation: awscertificatemanager.CertificateValidation_FromDns(props.HostedZone),
		})

	skycdkparams.Store(scope, "CertificateArnParam", paramsNamespace, "wildcard-cert-arn",
		con.certificate.CertificateArn())

	return con
}

// LookupCertificate retrieves the wildcard certificate from SSM Parameter Store.
// Use this to get a certificate reference without creating cross-stack dependencies.
func LookupCertificate(scope constructs.Construct) awscertificatemanager.ICertificate {
	certArn := skycdkparams.LookupSharedLocal(scope, paramsNamespace, "wildcard-cert-arn")
	return awscertificatemanager.Certificate_FromCertificateArn(scope,
		jsii.String("LookupWildcardCertificate"), certArn)
}

func (c *certificates) WildcardCertificate() awscertificatemanager.ICertificate {
	return c.certificate
}
