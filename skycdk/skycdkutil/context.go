package skycdkutil

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// deploymentIdentContextKey stores the deployment identifier in a stack's
// construct tree so constructs deep in the tree can recover it.
const deploymentIdentContextKey = "__skycdkutil_deployment_ident"

// StoreDeploymentIdent records the deployment identifier on a construct's
// context. NewStackFromConfig does this automatically for deployment stacks;
// tests use it to simulate a deployment scope.
func StoreDeploymentIdent(scope constructs.Construct, deploymentIdent string) {
	scope.Node().SetContext(jsii.String(deploymentIdentContextKey), deploymentIdent)
}

// DeploymentIdent returns the deployment identifier for the scope's stack,
// or the empty string inside a shared (non-deployment) stack.
func DeploymentIdent(scope constructs.Construct) string {
	val := scope.Node().TryGetContext(jsii.String(deploymentIdentContextKey))
	if val == nil {
		return ""
	}
	ident, ok := val.(string)
	if !ok {
		return ""
	}
	return ident
}
