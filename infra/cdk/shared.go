// Package cdk assembles the deployable infrastructure from the skycdk
// construct library. It declares the shared and per-deployment stages as
// registration lists and hands them to the stage resolver.
package cdk

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/skylifthq/skyapp/skycdk/skycdkcerts"
	"github.com/skylifthq/skyapp/skycdk/skycdkdns"
	"github.com/skylifthq/skyapp/skycdk/skycdkstages"
	"github.com/skylifthq/skyapp/skycdk/skycdkutil"
)

// Shared holds the per-region shared infrastructure handed to every
// deployment stack in the same region.
type Shared struct {
	DNS skycdkdns.DNS

	// Certs is nil until DNS delegation is complete; the certificate
	// cannot validate before the zone is resolvable.
	Certs skycdkcerts.Certificates
}

// sharedRegistrations declares the shared stage. The hosted zone is
// unconditional; the wildcard certificate waits for DNS delegation because
// ACM's DNS validation hangs against an undelegated zone.
func sharedRegistrations() []skycdkstages.Registration[*skycdkutil.Config] {
	return []skycdkstages.Registration[*skycdkutil.Config]{
		{
			Component: "Dns",
			Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
				return skycdkdns.New(props.Scope, skycdkdns.Props{}), nil
			},
		},
		{
			Component: "Certificates",
			Enabled:   func(cfg *skycdkutil.Config) bool { return cfg.DNSDelegated },
			DependsOn: []string{"Dns"},
			Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
				zone := props.DependencyHandles["Dns"].(skycdkdns.DNS)
				return skycdkcerts.New(props.Scope, skycdkcerts.Props{
					HostedZone: zone.HostedZone(),
				}), nil
			},
		},
	}
}

// NewShared resolves the shared stage for one region's shared stack.
//
// Deploy this first with dns-delegated=false, install the NS records the
// stack outputs at the registrar, then redeploy with dns-delegated=true to
// materialize the certificate.
func NewShared(stack awscdk.Stack) *Shared {
	cfg := skycdkutil.ConfigFromScope(stack)
	registry, err := skycdkstages.ResolveNamed(stack, cfg, stackNamer(stack), sharedRegistrations())
	if err != nil {
		panic(err)
	}

	shared := &Shared{}
	if h, ok := registry.Handle("Dns"); ok {
		shared.DNS = h.(skycdkdns.DNS)
	}
	if h, ok := registry.Handle("Certificates"); ok {
		shared.Certs = h.(skycdkcerts.Certificates)
	}
	return shared
}

// stackNamer names resolved units with the project's resource naming
// convention ("SkyappDns" in shared stacks, "SkyappStagCdn" in deployment
// stacks).
func stackNamer(stack awscdk.Stack) skycdkstages.Namer {
	return func(component string) string {
		return skycdkutil.ResourceName(stack, component, skycdkutil.CasingCamel)
	}
}
