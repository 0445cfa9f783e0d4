package skycdkutil

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// SharedConstructor creates shared infrastructure in a given stack.
// It returns the shared construct that will be passed to deployment constructors.
type SharedConstructor[S any] func(stack awscdk.Stack) S

// DeploymentConstructor creates deployment-specific infrastructure in a given stack.
// It receives the shared construct from the same region and the deployment identifier.
type DeploymentConstructor[S any] func(stack awscdk.Stack, shared S, deploymentIdent string)

// AppConfig configures the CDK app setup.
type AppConfig struct {
	// Prefix for context keys (e.g., "myapp-" for "myapp-qualifier", "myapp-primary-region", etc.)
	Prefix string
	// DeployersGroup is the IAM group that can deploy to all environments.
	DeployersGroup string
	// RestrictedDeployments are deployment identifiers that require DeployersGroup membership.
	RestrictedDeployments []string
}

// SetupApp configures a CDK app with multi-region, multi-deployment stacks
// and returns the validated configuration.
//
// One shared stack is created per region and one deployment stack per
// allowed deployment per region. Stack dependencies enforce the deploy
// order: primary shared first, then secondary shared and primary
// deployments, then secondary deployments.
//
// The type parameter S is the shared construct type returned by the
// SharedConstructor and handed to every DeploymentConstructor in the same
// region. SetupApp validates all context values upfront and panics with a
// clear error message if any required values are missing or invalid.
func SetupApp[S any](
	app awscdk.App,
	cfg AppConfig,
	newShared SharedConstructor[S],
	newDeployment DeploymentConstructor[S],
) *Config {
	config, err := NewConfig(app, cfg)
	if err != nil {
		panic(err)
	}
	StoreConfig(app, config)

	sharedStacks, shared := setupSharedStacks(app, config, newShared)
	setupDeploymentStacks(app, config, sharedStacks, shared, newDeployment)

	return config
}

// setupSharedStacks creates one shared stack per region, primary first.
// Secondary shared stacks depend on the primary one so cross-region
// parameter lookups find their values.
func setupSharedStacks[S any](
	app awscdk.App, config *Config, newShared SharedConstructor[S],
) (map[string]awscdk.Stack, map[string]S) {
	stacks := make(map[string]awscdk.Stack, len(config.SecondaryRegions)+1)
	shared := make(map[string]S, len(config.SecondaryRegions)+1)

	primary := NewStackFromConfig(app, config, config.PrimaryRegion)
	stacks[config.PrimaryRegion] = primary
	shared[config.PrimaryRegion] = newShared(primary)

	for _, region := range config.SecondaryRegions {
		stack := NewStackFromConfig(app, config, region)
		stack.AddDependency(primary, jsii.String("Primary region must deploy first"))
		stacks[region] = stack
		shared[region] = newShared(stack)
	}

	return stacks, shared
}

// setupDeploymentStacks creates one stack per allowed deployment per region.
func setupDeploymentStacks[S any](
	app awscdk.App,
	config *Config,
	sharedStacks map[string]awscdk.Stack,
	shared map[string]S,
	newDeployment DeploymentConstructor[S],
) {
	for _, deploymentIdent := range config.AllowedDeployments() {
		primary := NewStackFromConfig(app, config, config.PrimaryRegion, deploymentIdent)
		primary.AddDependency(sharedStacks[config.PrimaryRegion],
			jsii.String("Primary shared stack must deploy first"))
		newDeployment(primary, shared[config.PrimaryRegion], deploymentIdent)

		for _, region := range config.SecondaryRegions {
			stack := NewStackFromConfig(app, config, region, deploymentIdent)
			stack.AddDependency(primary,
				jsii.String("Primary region deployment must deploy first"))
			newDeployment(stack, shared[region], deploymentIdent)
		}
	}
}
