// Package skycdkparams provides utilities for storing and retrieving CDK construct
// values across stacks and AWS regions using AWS Systems Manager Parameter Store.
//
// This package enables resource sharing without CloudFormation cross-stack
// references:
//   - Producing stacks store identifiers in SSM Parameter Store
//   - Consuming stacks (same or secondary region) retrieve the stored values
//
// Parameter paths are scoped per deployment automatically: inside a
// deployment stack the path is /{qualifier}/{deployment}/{namespace}/{name},
// inside a shared stack it is /{qualifier}/{namespace}/{name}. The same
// convention is used by the skyapp CLI to locate values after deployment.
package skycdkparams

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awsssm"
	"github.com/aws/aws-cdk-go/awscdk/v2/customresources"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

// ParameterName generates the hierarchical SSM parameter path for the scope.
func ParameterName(scope constructs.Construct, namespace string, name string) *string {
	return jsii.String(ParameterPath(
		skycdkutil.Qualifier(scope), skycdkutil.DeploymentIdent(scope), namespace, name))
}

// ParameterPath builds an SSM parameter path from its parts. The deployment
// segment is omitted when empty (shared-stack parameters). This is the
// plain-string variant of ParameterName for callers outside a construct
// tree, such as the CLI.
func ParameterPath(qualifier, deploymentIdent, namespace, name string) string {
	parts := []string{"", qualifier}
	if deploymentIdent != "" {
		parts = append(parts, strings.ToLower(deploymentIdent))
	}
	parts = append(parts, namespace, name)
	return strings.Join(parts, "/")
}

// Store creates and stores a parameter in AWS SSM Parameter Store.
// Use this in the stack that owns the value so other stacks and the CLI can
// find it.
func Store(scope constructs.Construct, id string, namespace string, name string, value *string) {
	awsssm.NewStringParameter(scope, jsii.String(id),
		&awsssm.StringParameterProps{
			ParameterName: ParameterName(scope, namespace, name),
			StringValue:   value,
		})
}

// LookupLocal retrieves a parameter from SSM Parameter Store within the same region.
// Use this for same-region cross-stack references. For cross-region lookups, use Lookup.
func LookupLocal(scope constructs.Construct, namespace string, name string) *string {
	return awsssm.StringParameter_ValueForStringParameter(scope,
		ParameterName(scope, namespace, name), nil)
}

// LookupSharedLocal retrieves a parameter stored by a shared stack (no
// deployment segment in the path) from any stack in the same region. Use
// this inside deployment stacks to reference shared resources such as the
// hosted zone or the wildcard certificate.
func LookupSharedLocal(scope constructs.Construct, namespace string, name string) *string {
	path := ParameterPath(skycdkutil.Qualifier(scope), "", namespace, name)
	return awsssm.StringParameter_ValueForStringParameter(scope, jsii.String(path), nil)
}

// Lookup retrieves a parameter stored in the primary region using a custom resource.
// Use this in secondary regions to access values created in the primary region.
// The physicalID should be a stable identifier for the custom resource (e.g., "hosted-zone-id-lookup").
func Lookup(scope constructs.Construct, id string, namespace string, name string, physicalID string) *string {
	sdkCall := &customresources.AwsSdkCall{
		Service: jsii.String("SSM"),
		Action:  jsii.String("getParameter"),
		Parameters: map[string]any{
			"Name": ParameterName(scope, namespace, name),
		},
		Region:             jsii.String(skycdkutil.PrimaryRegion(scope)),
		PhysicalResourceId: customresources.PhysicalResourceId_Of(jsii.String(physicalID)),
	}
	// OnUpdate is required so that changes to the parameter path (e.g., when
	// scoping parameters per deployment) trigger a new SSM GetParameter call.
	// Without it, CloudFormation skips the SDK call on update and the response
	// is empty, causing "doesn't contain Parameter.Value" errors.
	lookup := customresources.NewAwsCustomResource(scope, jsii.String(id),
		&customresources.AwsCustomResourceProps{
			OnCreate: sdkCall,
			OnUpdate: sdkCall,
			Policy: customresources.AwsCustomResourcePolicy_FromSdkCalls(&customresources.SdkCallsPolicyOptions{
				Resources: customresources.AwsCustomResourcePolicy_ANY_RESOURCE(),
			}),
		})
	return lookup.GetResponseField(jsii.String("Parameter.Value"))
}
