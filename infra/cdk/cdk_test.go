//nolint:paralleltest // jsii runtime doesn't support parallel tests
package cdk_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/infra/cdk"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

func synthApp(t *testing.T, dnsDelegated bool) awscdk.App {
	t.Helper()

	ctx := map[string]any{
		"skyapp-qualifier":         "skyapp",
		"skyapp-primary-region":    "us-east-1",
		"skyapp-secondary-regions": []any{},
		"skyapp-deployments":       []any{"Stag"},
		"skyapp-base-domain-name":  "example.com",
		"skyapp-dns-delegated":     dnsDelegated,
	}
	app := awscdk.NewApp(&awscdk.AppProps{Context: &ctx})

	skycdkutil.SetupApp(app, skycdkutil.AppConfig{Prefix: "skyapp-"},
		cdk.NewShared,
		cdk.NewDeployment,
	)

	return app
}

// resourceTypes returns a count per CloudFormation resource type in the
// named stack's synthesized template.
func resourceTypes(t *testing.T, app awscdk.App, stackName string) map[string]int {
	t.Helper()

	tmpl := app.Synth(nil).GetStackByName(jsii.String(stackName)).Template()
	data, err := json.Marshal(tmpl)
	if err != nil {
		t.Fatalf("marshal template: %v", err)
	}

	var parsed struct {
		Resources map[string]struct {
			Type string `json:"Type"`
		} `json:"Resources"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal template: %v", err)
	}

	counts := map[string]int{}
	for _, res := range parsed.Resources {
		counts[res.Type]++
	}
	return counts
}

func TestSynth_BeforeDelegation(t *testing.T) {
	defer jsii.Close()

	app := synthApp(t, false)

	shared := resourceTypes(t, app, "skyappUse1Shared")
	if shared["AWS::Route53::HostedZone"] != 1 {
		t.Errorf("shared hosted zones = %d, want 1", shared["AWS::Route53::HostedZone"])
	}
	if shared["AWS::CertificateManager::Certificate"] != 0 {
		t.Error("certificate created before DNS delegation")
	}

	deployment := resourceTypes(t, app, "skyappUse1Stag")
	if deployment["AWS::S3::Bucket"] != 1 {
		t.Errorf("deployment buckets = %d, want 1", deployment["AWS::S3::Bucket"])
	}
	if deployment["AWS::CloudFront::Distribution"] != 0 {
		t.Error("distribution created before DNS delegation")
	}
}

func TestSynth_AfterDelegation(t *testing.T) {
	defer jsii.Close()

	app := synthApp(t, true)

	shared := resourceTypes(t, app, "skyappUse1Shared")
	if shared["AWS::CertificateManager::Certificate"] != 1 {
		t.Errorf("shared certificates = %d, want 1", shared["AWS::CertificateManager::Certificate"])
	}

	deployment := resourceTypes(t, app, "skyappUse1Stag")
	want := map[string]int{
		"AWS::S3::Bucket":               1,
		"AWS::CloudFront::Distribution": 1,
		"AWS::Route53::RecordSet":       2, // A + AAAA alias
	}
	for typ, count := range want {
		if deployment[typ] != count {
			t.Errorf("deployment %s = %d, want %d", typ, deployment[typ], count)
		}
	}
}
