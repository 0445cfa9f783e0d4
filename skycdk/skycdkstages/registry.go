package skycdkstages

// Result records the outcome of resolving one registration.
type Result struct {
	// Component is the originating registration's name.
	Component string
	// Created is false when the registration's Enabled predicate returned
	// false.
	Created bool
	// Handle is the constructed unit, set only when Created is true.
	Handle Handle
	// CanonicalName is the naming-convention identifier for the unit, set
	// only when Created is true.
	CanonicalName string
}

// Registry holds one [Result] per registration of a completed resolution
// pass, in registration order. It is a read-only view: [Resolve] builds a
// fresh instance per pass and never mutates it afterwards.
type Registry struct {
	order   []string
	results map[string]Result
}

func newRegistry(capacity int) *Registry {
	return &Registry{
		order:   make([]string, 0, capacity),
		results: make(map[string]Result, capacity),
	}
}

func (r *Registry) record(res Result) {
	r.order = append(r.order, res.Component)
	r.results[res.Component] = res
}

// Handle returns the created unit for a component. The second return value
// is false when the component is unknown or was not created.
func (r *Registry) Handle(component string) (Handle, bool) {
	res, ok := r.results[component]
	if !ok || !res.Created {
		return nil, false
	}
	return res.Handle, true
}

// Result returns the full resolution outcome for a component.
func (r *Registry) Result(component string) (Result, bool) {
	res, ok := r.results[component]
	return res, ok
}

// IsCreated reports whether a component was enabled and constructed.
func (r *Registry) IsCreated(component string) bool {
	res, ok := r.results[component]
	return ok && res.Created
}

// Created returns the handles of all created units keyed by component name.
func (r *Registry) Created() map[string]Handle {
	created := make(map[string]Handle, len(r.order))
	for _, component := range r.order {
		if res := r.results[component]; res.Created {
			created[component] = res.Handle
		}
	}
	return created
}

// Components returns all component names in registration order, created or
// not.
func (r *Registry) Components() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registrations the pass resolved.
func (r *Registry) Len() int {
	return len(r.order)
}
