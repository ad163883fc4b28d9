package main

import (
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/handsim/internal/config"
	"github.com/lox/handsim/internal/hand"
	"github.com/lox/handsim/internal/randutil"
	"github.com/lox/handsim/internal/report"
	"github.com/lox/handsim/internal/simulator"
)

// SimulateCmd deals many random hands and prints the category probabilities.
// Flags that are set override values from the config file.
type SimulateCmd struct {
	Config      string        `short:"c" type:"path" help:"HCL config file"`
	Hands       *int          `short:"n" help:"Number of hands to deal (default 100000)"`
	Workers     *int          `short:"w" help:"Parallel workers (0 = number of CPUs)"`
	Seed        *int64        `help:"RNG seed (0 for random)"`
	Denominator *int          `help:"Divide counts by this instead of the number of hands"`
	Legacy      bool          `help:"Resolve categories without four of a kind, as older tables did"`
	Timeout     time.Duration `help:"Abort the run after this long (0 = no limit)"`
	Output      string        `short:"o" type:"path" help:"Also write the results as JSON to this file"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger := setupLogger(os.Stderr, globals.Verbose)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	configureColor(cfg.ColorEnabled() && !globals.NoColor)

	simCfg, err := c.simulatorConfig(cfg)
	if err != nil {
		return err
	}
	simCfg.Logger = logger
	simCfg.Clock = quartz.NewReal()

	fmt.Printf("Dealing %d hands (seed: %d)\n\n", simCfg.Hands, simCfg.Seed)

	ctx, cancel := setupSignalContext(logger)
	defer cancel()

	res, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}
	renderResult(os.Stdout, res)

	if c.Output != "" {
		if err := report.FromResult(res).Write(c.Output); err != nil {
			return err
		}
		logger.Info("Wrote results", "path", c.Output)
	}
	return nil
}

// simulatorConfig layers explicitly set flags over the file configuration
func (c *SimulateCmd) simulatorConfig(cfg *config.Config) (simulator.Config, error) {
	simCfg, err := cfg.SimulatorConfig()
	if err != nil {
		return simulator.Config{}, err
	}

	if c.Hands != nil {
		simCfg.Hands = *c.Hands
	}
	if c.Workers != nil {
		simCfg.Workers = *c.Workers
	}
	if c.Seed != nil {
		simCfg.Seed = *c.Seed
	}
	if c.Denominator != nil {
		simCfg.Denominator = *c.Denominator
	}
	if c.Legacy {
		simCfg.Resolver = hand.ResolverLegacy
	}
	if c.Timeout != 0 {
		simCfg.Timeout = c.Timeout
	}
	simCfg.Seed = randutil.Seed(simCfg.Seed)

	if err := simCfg.Validate(); err != nil {
		return simulator.Config{}, err
	}
	return simCfg, nil
}
