package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"V" help:"Show version"`
	Verbose bool             `short:"v" help:"Enable debug logging"`

	Simulate SimulateCmd `cmd:"" help:"Simulate hands between decision policies"`
	Eval     EvalCmd     `cmd:"" help:"Evaluate a 5-7 card hand"`
	Equity   EquityCmd   `cmd:"" help:"Estimate hole card equity by Monte Carlo"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas hold'em engine: hand evaluation, betting simulation and policy analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
