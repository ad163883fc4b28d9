// Package config loads simulation settings from an optional HCL file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handsim/internal/hand"
	"github.com/lox/handsim/internal/simulator"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings    `hcl:"output,block"`
}

// SimulationSettings controls the Monte Carlo run
type SimulationSettings struct {
	Hands       int    `hcl:"hands,optional"`
	Workers     int    `hcl:"workers,optional"`
	Seed        int64  `hcl:"seed,optional"`
	Denominator int    `hcl:"denominator,optional"`
	Resolver    string `hcl:"resolver,optional"`
	Timeout     string `hcl:"timeout,optional"`
}

// OutputSettings controls how results are printed
type OutputSettings struct {
	Color *bool `hcl:"color,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Hands:    simulator.DefaultHands,
			Resolver: hand.ResolverStandard.String(),
		},
		Output: &OutputSettings{},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if cfg.Simulation.Hands == 0 {
		cfg.Simulation.Hands = simulator.DefaultHands
	}
	if cfg.Simulation.Resolver == "" {
		cfg.Simulation.Resolver = hand.ResolverStandard.String()
	}
	if cfg.Output == nil {
		cfg.Output = &OutputSettings{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Hands < 1 {
		return fmt.Errorf("invalid hands: %d", s.Hands)
	}
	if s.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", s.Workers)
	}
	if s.Denominator < 0 {
		return fmt.Errorf("invalid denominator: %d", s.Denominator)
	}
	if _, err := hand.ParseResolver(s.Resolver); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses the timeout setting; empty means no timeout
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Simulation.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Simulation.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Simulation.Timeout)
	}
	return d, nil
}

// ColorEnabled reports whether coloured output is wanted; unset means yes
func (c *Config) ColorEnabled() bool {
	if c.Output == nil || c.Output.Color == nil {
		return true
	}
	return *c.Output.Color
}

// SimulatorConfig converts the file settings into a simulator configuration.
// Logger and Clock are left for the caller.
func (c *Config) SimulatorConfig() (simulator.Config, error) {
	resolver, err := hand.ParseResolver(c.Simulation.Resolver)
	if err != nil {
		return simulator.Config{}, err
	}
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return simulator.Config{}, err
	}
	return simulator.Config{
		Hands:       c.Simulation.Hands,
		Workers:     c.Simulation.Workers,
		Seed:        c.Simulation.Seed,
		Denominator: c.Simulation.Denominator,
		Resolver:    resolver,
		Timeout:     timeout,
	}, nil
}
