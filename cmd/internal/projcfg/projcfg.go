// Package projcfg locates and parses the repository's skyapp.toml, the
// project-level configuration for the skyapp CLI.
package projcfg

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

const configFile = "skyapp.toml"

// Config is the parsed skyapp.toml, plus the repository root it was found
// in.
type Config struct {
	Root string     `toml:"-"`
	Cdk  CdkConfig  `toml:"cdk"`
	Site SiteConfig `toml:"site"`
}

// CdkConfig locates the CDK app within the repository.
type CdkConfig struct {
	// Dir is the directory holding cdk.json, relative to the root.
	Dir string `toml:"dir"`
}

// SiteConfig locates the publishable site assets.
type SiteConfig struct {
	// Dist is the built site output directory, relative to the root.
	Dist string `toml:"dist"`
}

// CdkDir returns the absolute CDK app directory.
func (c *Config) CdkDir() string {
	return filepath.Join(c.Root, c.Cdk.Dir)
}

// SiteDistDir returns the absolute site output directory.
func (c *Config) SiteDistDir() string {
	return filepath.Join(c.Root, c.Site.Dist)
}

// Load walks up from the working directory until it finds skyapp.toml and
// parses it.
func Load() (*Config, error) {
	root, err := findRoot()
	if err != nil {
		return nil, err
	}
	return LoadFrom(root)
}

// LoadFrom parses skyapp.toml in the given root directory.
func LoadFrom(root string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(filepath.Join(root, configFile), &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", configFile)
	}

	cfg.Root = root

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", configFile)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Cdk.Dir == "" {
		return errors.New("cdk.dir is required")
	}
	if filepath.IsAbs(c.Cdk.Dir) {
		return errors.Newf("cdk.dir must be relative, got %q", c.Cdk.Dir)
	}
	if c.Site.Dist != "" && filepath.IsAbs(c.Site.Dist) {
		return errors.Newf("site.dist must be relative, got %q", c.Site.Dist)
	}
	return nil
}

func findRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, configFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf("could not find %s in any parent directory", configFile)
		}
		dir = parent
	}
}
