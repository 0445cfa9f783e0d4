package skycdkstages

import (
	"github.com/cockroachdb/errors"
)

// ErrConfiguration marks errors caused by an invalid registration list or by
// an enabled unit depending on a unit that was not created. Callers can test
// for it with errors.Is. Errors returned by factories or ExtraProps
// functions are never marked: they propagate verbatim.
var ErrConfiguration = errors.New("invalid stage configuration")

func configErrf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}

// Validate checks a registration list against the stage contract: component
// names must be unique, every dependency must name a registered component,
// and dependencies must be registered strictly before their dependents (a
// self-reference is always out of order).
//
// The first violation found wins. [Resolve] calls Validate itself; use it
// directly to fail fast when assembling a list incrementally.
func Validate[C any](regs []Registration[C]) error {
	index := make(map[string]int, len(regs))
	for i, reg := range regs {
		if _, ok := index[reg.Component]; ok {
			return configErrf("duplicate component name %q", reg.Component)
		}
		index[reg.Component] = i
	}

	for i, reg := range regs {
		for _, dep := range reg.DependsOn {
			at, ok := index[dep]
			if !ok {
				return configErrf(
					"component %q depends on %q, but %q is not registered",
					reg.Component, dep, dep)
			}
			if at >= i {
				return configErrf(
					"component %q depends on %q, but %q is registered after it; "+
						"dependencies must be registered before their dependents",
					reg.Component, dep, dep)
			}
		}
	}

	return nil
}
