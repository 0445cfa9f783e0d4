// Package skycdkidentity provides IAM identity constructs for the
// deployment's operational roles.
//
// The publisher role is assumed by CI (or a developer) to upload new site
// revisions: it can write the asset bucket and invalidate the CDN cache,
// and nothing else. Its ARN is stored in SSM Parameter Store so the skyapp
// CLI can find and assume it.
package skycdkidentity

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkparams"
	"github.com/skylifthq/skyapp/skycdk/skycdksite"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

const paramsNamespace = "identity"

// Publisher provides access to the role allowed to publish site revisions.
type Publisher interface {
	// Role returns the publisher IAM role.
	Role() awsiam.IRole
}

// Props configures the Publisher construct.
type Props struct {
	// Site is the site whose asset bucket the publisher may write. Required.
	Site skycdksite.Site

	// Distribution is the CDN the publisher may invalidate. Required.
	Distribution awscloudfront.IDistribution
}

type publisher struct {
	role awsiam.IRole
}

// New creates the Publisher role for the current deployment.
//
// The role is assumable by principals in the same account; access control
// beyond that is delegated to IAM policies on who may assume it.
func New(scope constructs.Construct, props Props) Publisher {
	scope = constructs.NewConstruct(scope, jsii.String("Publisher"))
	con := &publisher{}

	stack := awscdk.Stack_Of(scope)
	role := awsiam.NewRole(scope, jsii.String("Role"), &awsiam.RoleProps{
		RoleName:  skycdkutil.ResourceNamePtr(scope, "Publisher", skycdkutil.CasingKebab),
		AssumedBy: awsiam.NewAccountPrincipal(stack.Account()),
		Description: jsii.String(
			"Publishes site assets and invalidates the CDN cache"),
	})
	con.role = role

	props.Site.GrantPublish(role)

	distributionArn := stack.FormatArn(&awscdk.ArnComponents{
		Service:      jsii.String("cloudfront"),
		Region:       jsii.String(""), // CloudFront ARNs are global
		Resource:     jsii.String("distribution"),
		ResourceName: props.Distribution.DistributionId(),
	})
	role.AddToPrincipalPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions: jsii.Strings(
			"cloudfront:CreateInvalidation",
			"cloudfront:GetInvalidation",
		),
		Resources: &[]*string{distributionArn},
	}))

	skycdkparams.Store(scope, "PublisherRoleArnParam", paramsNamespace, "publisher-role-arn",
		role.RoleArn())

	return con
}

func (p *publisher) Role() awsiam.IRole {
	return p.role
}
