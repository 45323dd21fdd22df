// Package config holds the run configuration for datmirror, loadable
// from a YAML file and overridable by CLI options.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/mirrordat/datmirror/nointro"
	"github.com/mirrordat/datmirror/redump"
)

type Config struct {
	// OutputDir is the root of the mirror tree; each archive gets a
	// subdirectory under it.
	OutputDir string        `yaml:"output_dir"`
	Clean     bool          `yaml:"clean"`
	Filter    string        `yaml:"filter"`
	Timeout   time.Duration `yaml:"timeout"`
	Retries   int           `yaml:"retries"`

	Redump  Archive `yaml:"redump"`
	NoIntro Archive `yaml:"no_intro"`
}

// Archive configures one remote archive.
type Archive struct {
	Disabled bool   `yaml:"disabled"`
	URL      string `yaml:"url"`
	Subdir   string `yaml:"subdir"`
}

func Default() *Config {
	return &Config{
		OutputDir: "dats",
		Timeout:   3 * time.Minute,
		Retries:   5,
		Redump: Archive{
			URL:    redump.BaseURL,
			Subdir: "redump",
		},
		NoIntro: Archive{
			URL:    nointro.PrepareURL,
			Subdir: "no-intro",
		},
	}
}

// Load reads path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
