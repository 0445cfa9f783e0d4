// Package skycdkutil provides utilities for AWS CDK applications in Go.
//
// # Quick Start
//
// Use [SetupApp] to configure a multi-region, multi-deployment CDK application:
//
//	func main() {
//	    defer jsii.Close()
//	    app := awscdk.NewApp(nil)
//
//	    skycdkutil.SetupApp(app, skycdkutil.AppConfig{
//	        Prefix:                "myapp-",
//	        DeployersGroup:        "myapp-deployers",
//	        RestrictedDeployments: []string{"Stag", "Prod"},
//	    },
//	        func(stack awscdk.Stack) *Shared { return NewShared(stack) },
//	        func(stack awscdk.Stack, shared *Shared, deploymentIdent string) {
//	            NewDeployment(stack, shared, deploymentIdent)
//	        },
//	    )
//
//	    app.Synth(nil)
//	}
//
// # CDK Context Configuration
//
// The package reads configuration from CDK context (cdk.json). With prefix "myapp-":
//
//	{
//	  "myapp-qualifier": "myapp",
//	  "myapp-primary-region": "us-east-1",
//	  "myapp-secondary-regions": ["eu-west-1"],
//	  "myapp-deployments": ["Dev", "Stag", "Prod"],
//	  "myapp-base-domain-name": "example.com",
//	  "myapp-dns-delegated": true,
//	  "myapp-deployer-groups": "myapp-deployers"
//	}
//
// # Stack Creation Order
//
// [SetupApp] creates stacks with the following dependency order:
//  1. Primary shared stack
//  2. Secondary shared stacks (depend on primary shared)
//  3. Primary deployment stacks (depend on primary shared)
//  4. Secondary deployment stacks (depend on primary deployment)
//
// # Features
//
//   - [SetupApp]: Multi-region, multi-deployment app orchestration
//   - [NewStackFromConfig]: Stack creation with qualifier and region naming
//   - [ResourceName]: Qualifier/deployment resource naming convention
//   - [ApplyStandardTags]: Project/deployment tagging convention
//   - [Config.AllowedDeployments]: Role-based deployment authorization
package skycdkutil
