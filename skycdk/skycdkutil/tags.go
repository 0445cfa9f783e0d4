package skycdkutil

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Tag keys applied by ApplyStandardTags. All provisioned resources carry
// these so cost reports and consoles can be filtered per project and
// deployment.
const (
	TagProject    = "Project"
	TagDeployment = "Deployment"
	TagManagedBy  = "ManagedBy"
)

// sharedDeploymentTag is the Deployment tag value for shared (non-deployment) stacks.
const sharedDeploymentTag = "Shared"

// ApplyStandardTags tags every resource under scope with the project
// qualifier, the deployment identifier (or "Shared"), and a ManagedBy
// marker. NewStackFromConfig applies it to every stack it creates; apply it
// manually only to constructs created outside that path.
func ApplyStandardTags(scope constructs.Construct, cfg *Config, deploymentIdent string) {
	deployment := deploymentIdent
	if deployment == "" {
		deployment = sharedDeploymentTag
	}

	tags := awscdk.Tags_Of(scope)
	tags.Add(jsii.String(TagProject), jsii.String(cfg.Qualifier), nil)
	tags.Add(jsii.String(TagDeployment), jsii.String(deployment), nil)
	tags.Add(jsii.String(TagManagedBy), jsii.String("skycdk"), nil)
}
