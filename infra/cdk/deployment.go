package cdk

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/skylifthq/skyapp/skycdk/skycdkcdn"
	"github.com/skylifthq/skyapp/skycdk/skycdkcerts"
	"github.com/skylifthq/skyapp/skycdk/skycdkdns"
	"github.com/skylifthq/skyapp/skycdk/skycdkidentity"
	"github.com/skylifthq/skyapp/skycdk/skycdksite"
	"github.com/skylifthq/skyapp/skycdk/skycdkstages"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

// deploymentRegistrations declares the per-deployment stage. The asset
// bucket always exists so CI can publish before DNS is live; everything
// that serves traffic on the custom domain gates on delegation.
func deploymentRegistrations(deploymentIdent string) []skycdkstages.Registration[*skycdkutil.Config] {
	dnsDelegated := func(cfg *skycdkutil.Config) bool { return cfg.DNSDelegated }

	return []skycdkstages.Registration[*skycdkutil.Config]{
		{
			Component: "SiteBucket",
			Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
				return skycdksite.New(props.Scope, skycdksite.Props{
					Versioned: jsii.Bool(true),
				}), nil
			},
		},
		{
			Component: "Cdn",
			Enabled:   dnsDelegated,
			DependsOn: []string{"SiteBucket"},
			ExtraProps: func(cfg *skycdkutil.Config, deps skycdkstages.Handles) map[string]any {
				return map[string]any{
					"domain-name": deploymentDomain(deploymentIdent, cfg),
				}
			},
			Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
				site := props.DependencyHandles["SiteBucket"].(skycdksite.Site)
				return skycdkcdn.New(props.Scope, skycdkcdn.Props{
					Origin:        site.Bucket(),
					Certificate:   skycdkcerts.LookupCertificate(props.Scope),
					DomainNames:   *jsii.Strings(props.Extra["domain-name"].(string)),
					SinglePageApp: true,
				}), nil
			},
		},
		{
			Component: "DnsRecords",
			Enabled:   dnsDelegated,
			DependsOn: []string{"Cdn"},
			Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
				cdn := props.DependencyHandles["Cdn"].(skycdkcdn.CDN)
				zone := skycdkdns.LookupHostedZone(props.Scope, nil)
				skycdkdns.NewDistributionAlias(props.Scope, "SiteAlias", skycdkdns.AliasRecordProps{
					HostedZone:   zone,
					Distribution: cdn.Distribution(),
					RecordName:   jsii.String(strings.ToLower(deploymentIdent)),
				})
				return zone, nil
			},
		},
		{
			Component: "Publisher",
			Enabled:   dnsDelegated,
			DependsOn: []string{"SiteBucket", "Cdn"},
			Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
				return skycdkidentity.New(props.Scope, skycdkidentity.Props{
					Site:         props.DependencyHandles["SiteBucket"].(skycdksite.Site),
					Distribution: props.DependencyHandles["Cdn"].(skycdkcdn.CDN).Distribution(),
				}), nil
			},
		},
	}
}

// NewDeployment resolves the deployment stage for one deployment's stack.
func NewDeployment(stack awscdk.Stack, shared *Shared, deploymentIdent string) {
	cfg := skycdkutil.ConfigFromScope(stack)
	_, err := skycdkstages.ResolveNamed(stack, cfg, stackNamer(stack),
		deploymentRegistrations(deploymentIdent))
	if err != nil {
		panic(err)
	}
}

// deploymentDomain returns the custom domain a deployment serves on, e.g.
// "stag.example.com" for the Stag deployment.
func deploymentDomain(deploymentIdent string, cfg *skycdkutil.Config) string {
	return strings.ToLower(deploymentIdent) + "." + cfg.BaseDomainName
}
