// Package awsenv reads the process environment the CLI cares about.
package awsenv

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Env holds environment overrides. AWS SDK clients read the standard AWS_*
// variables themselves; these are surfaced here for command-line defaults
// and log output only.
type Env struct {
	// Region overrides the region commands talk to. Empty means the
	// region from the CDK context.
	Region string `env:"AWS_REGION"`

	// Profile is the AWS credentials profile, logged for operator sanity.
	Profile string `env:"AWS_PROFILE"`

	// Verbose enables debug logging without the --verbose flag.
	Verbose bool `env:"SKYAPP_VERBOSE"`
}

// Load parses the environment.
func Load() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}
	return &e, nil
}
