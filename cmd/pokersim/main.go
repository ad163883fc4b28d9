package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand
type Globals struct {
	Verbose bool `short:"v" help:"Verbose logging"`
	NoColor bool `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `help:"Show version"`
	Simulate SimulateCmd      `cmd:"" default:"withargs" help:"Estimate hand category probabilities by dealing random hands"`
	Classify ClassifyCmd      `cmd:"" help:"Classify one or more five-card hands"`
	Deal     DealCmd          `cmd:"" help:"Deal random hands and classify them"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokersim"),
		kong.Description("Five-card poker hand classifier and Monte Carlo probability estimator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
