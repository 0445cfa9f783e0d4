package cdkctx_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skylifthq/skyapp/cmd/internal/cdkctx"
)

func writeCdkDir(t *testing.T, cdkJSON, contextJSON string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cdk.json"), []byte(cdkJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cdk.context.json"), []byte(contextJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

const validCdkJSON = `{
	"app": "go run .",
	"context": {
		"@aws-cdk/core:bootstrapQualifier": "skyapp"
	}
}`

const validContextJSON = `{
	"skyapp-primary-region": "us-east-1",
	"skyapp-secondary-regions": ["eu-west-1"],
	"skyapp-deployments": ["Stag", "Prod"],
	"skyapp-base-domain-name": "example.com"
}`

func TestLoad(t *testing.T) {
	dir := writeCdkDir(t, validCdkJSON, validContextJSON)

	cctx, err := cdkctx.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cctx.Qualifier != "skyapp" {
		t.Errorf("Qualifier = %q, want skyapp", cctx.Qualifier)
	}
	if cctx.PrimaryRegion != "us-east-1" {
		t.Errorf("PrimaryRegion = %q, want us-east-1", cctx.PrimaryRegion)
	}
	if got := cctx.AllRegions(); len(got) != 2 || got[1] != "eu-west-1" {
		t.Errorf("AllRegions = %v, want [us-east-1 eu-west-1]", got)
	}
	if !cctx.IsValidDeployment("Stag") || cctx.IsValidDeployment("Dev") {
		t.Error("IsValidDeployment: want Stag valid, Dev invalid")
	}
	if cctx.BaseDomainName != "example.com" {
		t.Errorf("BaseDomainName = %q, want example.com", cctx.BaseDomainName)
	}
}

func TestLoad_MissingQualifier(t *testing.T) {
	dir := writeCdkDir(t, `{"context": {}}`, validContextJSON)

	_, err := cdkctx.Load(dir)
	if err == nil || !strings.Contains(err.Error(), "bootstrapQualifier") {
		t.Fatalf("Load error = %v, want bootstrapQualifier error", err)
	}
}

func TestLoad_MissingContextKey(t *testing.T) {
	dir := writeCdkDir(t, validCdkJSON, `{"skyapp-primary-region": "us-east-1"}`)

	_, err := cdkctx.Load(dir)
	if err == nil || !strings.Contains(err.Error(), "skyapp-secondary-regions") {
		t.Fatalf("Load error = %v, want missing context key error", err)
	}
}

func TestStackNames(t *testing.T) {
	dir := writeCdkDir(t, validCdkJSON, validContextJSON)

	cctx, err := cdkctx.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cctx.SharedStackName("us-east-1"); got != "skyappUse1Shared" {
		t.Errorf("SharedStackName = %q, want skyappUse1Shared", got)
	}
	if got := cctx.DeploymentStackName("eu-west-1", "Stag"); got != "skyappEuw1Stag" {
		t.Errorf("DeploymentStackName = %q, want skyappEuw1Stag", got)
	}
}

func TestResolveStackRegion(t *testing.T) {
	dir := writeCdkDir(t, validCdkJSON, validContextJSON)

	cctx, err := cdkctx.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, tt := range []struct {
		stack  string
		region string
		ok     bool
	}{
		{"skyappUse1Stag", "us-east-1", true},
		{"skyappEuw1Shared", "eu-west-1", true},
		{"otherUse1Stag", "", false},
		{"skyappNowhere", "", false},
	} {
		region, ok := cctx.ResolveStackRegion(tt.stack)
		if region != tt.region || ok != tt.ok {
			t.Errorf("ResolveStackRegion(%q) = %q, %v; want %q, %v",
				tt.stack, region, ok, tt.region, tt.ok)
		}
	}
}
