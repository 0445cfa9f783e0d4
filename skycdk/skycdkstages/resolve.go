package skycdkstages

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/iancoleman/strcase"
)

// Namer derives the canonical display name for a created unit from its
// component name.
type Namer func(component string) string

// Resolve validates the registration list and materializes it against the
// given configuration, walking the list once in registration order.
//
// Canonical names are derived from the scope's construct ID and the
// component name ("SkyappUse1StagCdn" for a stack "skyappUse1Stag" and
// component "Cdn"). Use [ResolveNamed] to supply a different convention.
func Resolve[C any](scope constructs.Construct, cfg C, regs []Registration[C]) (*Registry, error) {
	return ResolveNamed(scope, cfg, func(component string) string {
		return strcase.ToCamel(fmt.Sprintf("%s-%s", *scope.Node().Id(), component))
	}, regs)
}

// ResolveNamed is [Resolve] with an explicit naming convention.
//
// For each registration, in order: the Enabled predicate is evaluated once;
// a disabled unit is recorded with Created=false and skipped, even when its
// own dependencies were not created. For an enabled unit every declared
// dependency must already be created, or the pass fails with an error marked
// [ErrConfiguration]. ExtraProps (when set) then receives exactly the
// declared dependency handles, and Build receives the merged [Props].
//
// Any error aborts the pass immediately and no registry is returned: partial
// construct state is the caller's concern, mirroring the all-or-nothing
// semantics of a CDK synthesis. Resolving the same list and configuration
// twice yields registries with identical created/dependency shape.
func ResolveNamed[C any](
	scope constructs.Construct, cfg C, name Namer, regs []Registration[C],
) (*Registry, error) {
	if err := Validate(regs); err != nil {
		return nil, err
	}

	registry := newRegistry(len(regs))
	for _, reg := range regs {
		if reg.Enabled != nil && !reg.Enabled(cfg) {
			registry.record(Result{Component: reg.Component})
			continue
		}

		handles := make(Handles, len(reg.DependsOn))
		ordered := make([]Handle, 0, len(reg.DependsOn))
		for _, dep := range reg.DependsOn {
			// Validation guarantees dep is registered earlier, so the only
			// expected miss here is a dependency that was disabled.
			res, ok := registry.Result(dep)
			if !ok || !res.Created {
				return nil, configErrf(
					"component %q depends on %q, but %q was not created; "+
						"a dependency must be registered and enabled",
					reg.Component, dep, dep)
			}
			handles[dep] = res.Handle
			ordered = append(ordered, res.Handle)
		}

		var extra map[string]any
		if reg.ExtraProps != nil {
			extra = reg.ExtraProps(cfg, handles)
		}

		canonical := name(reg.Component)
		handle, err := reg.Build(Props[C]{
			Scope:             scope,
			Config:            cfg,
			Component:         reg.Component,
			CanonicalName:     canonical,
			Dependencies:      ordered,
			DependencyHandles: handles,
			Extra:             extra,
		})
		if err != nil {
			return nil, err
		}

		registry.record(Result{
			Component:     reg.Component,
			Created:       true,
			Handle:        handle,
			CanonicalName: canonical,
		})
	}

	return registry, nil
}
