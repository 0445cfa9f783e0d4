package skycdkstages

import (
	"github.com/aws/constructs-go/constructs/v10"
)

// Handle is the opaque value a unit factory returns. Dependents receive
// handles through [Handles] and type-assert them to whatever construct
// interface they expect.
type Handle = any

// Handles maps dependency component names to their resolved handles.
type Handles map[string]Handle

// Factory builds one deployable unit from its merged construction context.
// Returning an error aborts the whole resolution pass; the error is handed
// to the caller unwrapped.
type Factory[C any] func(props Props[C]) (Handle, error)

// Registration describes one candidate deployable unit within a stage.
//
// Registrations are plain values: construct the list once, hand it to
// [Resolve], and treat it as read-only afterwards.
type Registration[C any] struct {
	// Component uniquely identifies the unit within the registration list.
	Component string

	// Enabled decides whether the unit is materialized. It is evaluated
	// exactly once per resolution pass, at resolve time. A nil Enabled
	// means the unit is always enabled.
	Enabled func(cfg C) bool

	// DependsOn lists the components this unit needs. Every name must be
	// registered strictly earlier in the list, and the named unit must end
	// up created for this unit to build.
	DependsOn []string

	// ExtraProps produces unit-specific construction parameters from the
	// configuration and the resolved dependency handles. It is invoked
	// only when the unit is enabled and all dependencies resolved.
	// Optional.
	ExtraProps func(cfg C, deps Handles) map[string]any

	// Build constructs the unit. Required.
	Build Factory[C]
}

// Props carries the merged construction context for one unit.
type Props[C any] struct {
	// Scope is the construct scope the unit attaches to, typically the
	// stage's stack.
	Scope constructs.Construct

	// Config is the global configuration driving the stage.
	Config C

	// Component is the registration's component name.
	Component string

	// CanonicalName is the naming-convention identifier derived for the
	// unit.
	CanonicalName string

	// Dependencies holds the resolved dependency handles in declaration
	// order. Factories can use these for construct-level ordering hints.
	Dependencies []Handle

	// DependencyHandles maps dependency component names to their handles.
	DependencyHandles Handles

	// Extra is the output of the registration's ExtraProps function, nil
	// when the registration has none.
	Extra map[string]any
}
