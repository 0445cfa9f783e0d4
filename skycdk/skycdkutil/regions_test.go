//nolint:paralleltest // this test doesn't need parallel execution
package skycdkutil_test

import (
	"testing"

	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

func TestRegionIdentFor(t *testing.T) {
	tests := []struct {
		region    string
		wantIdent string
	}{
		{"us-east-1", "Use1"},
		{"us-west-2", "Usw2"},
		{"eu-west-1", "Euw1"},
		{"eu-central-1", "Euc1"},
		{"ap-northeast-1", "Apn1"},
		{"ap-southeast-1", "Ase1"},
		{"sa-east-1", "Sae1"},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got := skycdkutil.RegionIdentFor(tt.region)
			if got != tt.wantIdent {
				t.Errorf("RegionIdentFor(%q) = %q, want %q", tt.region, got, tt.wantIdent)
			}
		})
	}
}

func TestRegionIdentForPanicsOnUnknown(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unknown region")
		}
	}()

	skycdkutil.RegionIdentFor("unknown-region-1")
}

func TestIsKnownRegion(t *testing.T) {
	if !skycdkutil.IsKnownRegion("us-east-1") {
		t.Error("us-east-1 should be known")
	}
	if skycdkutil.IsKnownRegion("unknown-region-1") {
		t.Error("unknown-region-1 should not be known")
	}
}

func TestRegionIdentLower(t *testing.T) {
	if got := skycdkutil.RegionIdentLower("us-east-1"); got != "use1" {
		t.Errorf("RegionIdentLower(us-east-1) = %q, want %q", got, "use1")
	}
	if got := skycdkutil.RegionIdentLower("eu-west-1"); got != "euw1" {
		t.Errorf("RegionIdentLower(eu-west-1) = %q, want %q", got, "euw1")
	}
}

func TestRegionForIdent_AllRegionsRoundTrip(t *testing.T) {
	for region, ident := range skycdkutil.RegionIdents {
		got, ok := skycdkutil.RegionForIdent(ident)
		if !ok {
			t.Errorf("RegionForIdent(%q): not found, want %q", ident, region)
			continue
		}
		if got != region {
			t.Errorf("RegionForIdent(%q) = %q, want %q", ident, got, region)
		}
	}
}

func TestExtractRegionIdent(t *testing.T) {
	tests := []struct {
		stackName string
		want      string
	}{
		{"skyappEuw1Stag", "Euw1"},
		{"skyappUse1Prod", "Use1"},
		{"skyappEuc2Shared", "Euc2"},
		{"notastack", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := skycdkutil.ExtractRegionIdent(tt.stackName)
		if got != tt.want {
			t.Errorf("ExtractRegionIdent(%q) = %q, want %q", tt.stackName, got, tt.want)
		}
	}
}
