// Package skycdkstages provides a declarative stage resolver for deployable
// infrastructure units.
//
// A stage is an ordered list of registrations. Each registration names a
// component, decides from the configuration whether it is enabled, declares
// which earlier components it depends on, and provides a factory that builds
// the unit. [Resolve] walks the list once, left to right, wiring resolved
// dependency handles into each factory call and recording every outcome in a
// [Registry].
//
// # Quick Start
//
//	registry, err := skycdkstages.Resolve(stack, cfg, []skycdkstages.Registration[*skycdkutil.Config]{
//	    {
//	        Component: "Dns",
//	        Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
//	            return skycdkdns.New(props.Scope, skycdkdns.Props{}), nil
//	        },
//	    },
//	    {
//	        Component: "Certificates",
//	        Enabled:   func(cfg *skycdkutil.Config) bool { return cfg.DNSDelegated },
//	        DependsOn: []string{"Dns"},
//	        Build: func(props skycdkstages.Props[*skycdkutil.Config]) (skycdkstages.Handle, error) {
//	            zone := props.DependencyHandles["Dns"].(skycdkdns.DNS).HostedZone()
//	            return skycdkcerts.New(props.Scope, skycdkcerts.Props{HostedZone: zone}), nil
//	        },
//	    },
//	})
//
// # Ordering Contract
//
// Dependencies must be registered strictly before their dependents. This is
// a deliberate trade-off: it is stricter than a general topological sort but
// makes the materialization order obvious from the registration list itself,
// and rules out cycles and self-references without any graph analysis.
// Callers hand-order their lists; [Validate] rejects lists that violate the
// contract before any unit is built.
//
// # Failure Semantics
//
// Every failure is fatal to the whole pass. A disabled unit is not a
// failure: it is recorded with Created=false and dependents that are
// themselves disabled are unaffected. An enabled unit depending on a unit
// that was not created fails the pass with an error marked with
// [ErrConfiguration]. Errors returned by factories or ExtraProps functions
// propagate to the caller verbatim.
package skycdkstages
