package main

import (
	"github.com/skylifthq/skyapp/infra/cdk"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

const projectPrefix = "skyapp"

func main() {
	defer jsii.Close()
	app := awscdk.NewApp(nil)

	skycdkutil.SetupApp(app, skycdkutil.AppConfig{
		Prefix:                projectPrefix + "-",
		DeployersGroup:        projectPrefix + "-deployers",
		RestrictedDeployments: []string{"Prod"},
	},
		cdk.NewShared,
		cdk.NewDeployment,
	)

	app.Synth(nil)
}
