// Package cdkctx reads the CDK app's configuration files (cdk.json and
// cdk.context.json) so CLI commands can derive stack names, regions and
// deployments without synthesizing the app.
package cdkctx

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

// CDKContext is the CLI's view of the CDK app configuration.
type CDKContext struct {
	Qualifier        string
	Prefix           string
	PrimaryRegion    string
	SecondaryRegions []string
	Deployments      []string
	BaseDomainName   string
}

// Load reads the CDK context from cdkDir. The qualifier comes from
// cdk.json's bootstrapQualifier; everything else from cdk.context.json
// under the "{qualifier}-" prefix, mirroring what the CDK app itself reads.
func Load(cdkDir string) (*CDKContext, error) {
	qualifier, err := readQualifier(cdkDir)
	if err != nil {
		return nil, err
	}

	prefix := qualifier + "-"

	ctxFile := filepath.Join(cdkDir, "cdk.context.json")
	ctxData, err := os.ReadFile(ctxFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", ctxFile)
	}

	var ctxMap map[string]json.RawMessage
	if err := json.Unmarshal(ctxData, &ctxMap); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", ctxFile)
	}

	cctx := &CDKContext{Qualifier: qualifier, Prefix: prefix}
	if cctx.PrimaryRegion, err = getString(ctxMap, prefix+"primary-region"); err != nil {
		return nil, errors.Wrapf(err, "in %s", ctxFile)
	}
	if cctx.SecondaryRegions, err = getStringSlice(ctxMap, prefix+"secondary-regions"); err != nil {
		return nil, errors.Wrapf(err, "in %s", ctxFile)
	}
	if cctx.Deployments, err = getStringSlice(ctxMap, prefix+"deployments"); err != nil {
		return nil, errors.Wrapf(err, "in %s", ctxFile)
	}
	if cctx.BaseDomainName, err = getString(ctxMap, prefix+"base-domain-name"); err != nil {
		return nil, errors.Wrapf(err, "in %s", ctxFile)
	}

	return cctx, nil
}

// AllRegions returns the primary region plus all secondary regions.
func (c *CDKContext) AllRegions() []string {
	return append([]string{c.PrimaryRegion}, c.SecondaryRegions...)
}

// IsValidDeployment reports whether name is a configured deployment.
func (c *CDKContext) IsValidDeployment(name string) bool {
	return slices.Contains(c.Deployments, name)
}

// SharedStackName returns the shared stack's CloudFormation name in region.
func (c *CDKContext) SharedStackName(region string) string {
	return skycdkutil.SharedStackName(c.Qualifier, skycdkutil.RegionIdentFor(region))
}

// DeploymentStackName returns a deployment stack's CloudFormation name in
// region.
func (c *CDKContext) DeploymentStackName(region, deployment string) string {
	return skycdkutil.DeploymentStackName(c.Qualifier, skycdkutil.RegionIdentFor(region), deployment)
}

// ResolveStackRegion extracts the region from a stack name produced by
// SharedStackName or DeploymentStackName.
func (c *CDKContext) ResolveStackRegion(stackName string) (string, bool) {
	if !strings.HasPrefix(stackName, c.Qualifier) {
		return "", false
	}
	ident := skycdkutil.ExtractRegionIdent(stackName)
	if ident == "" {
		return "", false
	}
	return skycdkutil.RegionForIdent(ident)
}

func readQualifier(cdkDir string) (string, error) {
	cdkJSON := filepath.Join(cdkDir, "cdk.json")
	data, err := os.ReadFile(cdkJSON)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", cdkJSON)
	}

	var cfg struct {
		Context map[string]json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return "", errors.Wrapf(err, "parsing %s", cdkJSON)
	}

	raw, ok := cfg.Context["@aws-cdk/core:bootstrapQualifier"]
	if !ok {
		return "", errors.Newf("missing @aws-cdk/core:bootstrapQualifier in %s", cdkJSON)
	}

	var qualifier string
	if err := json.Unmarshal(raw, &qualifier); err != nil {
		return "", errors.Newf("@aws-cdk/core:bootstrapQualifier must be a string in %s", cdkJSON)
	}
	return qualifier, nil
}

func getString(m map[string]json.RawMessage, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", errors.Newf("context key %q is not set", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.Newf("context key %q must be a string", key)
	}
	return s, nil
}

func getStringSlice(m map[string]json.RawMessage, key string) ([]string, error) {
	raw, ok := m[key]
	if !ok {
		return nil, errors.Newf("context key %q is not set", key)
	}
	var ss []string
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, errors.Newf("context key %q must be an array of strings", key)
	}
	return ss, nil
}
