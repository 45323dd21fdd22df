package main

import (
	"github.com/scott-cotton/cli"
)

// MainConfig carries the options shared by every subcommand.
type MainConfig struct {
	Out     string `cli:"name=o aliases=out desc='output directory (default dats)'"`
	Clean   bool   `cli:"name=clean desc='remove the archive output dir before mirroring'"`
	Filter  string `cli:"name=filter aliases=f desc='expression selecting systems by Name/HasDatfile/HasBIOS'"`
	Config  string `cli:"name=config aliases=c desc='yaml config file'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='debug logging'"`
	NoColor bool   `cli:"name=no-color desc='disable colored status lines'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "datmirror").
		WithSynopsis("datmirror [opts] [command]").
		WithDescription("datmirror mirrors datfiles from redump and no-intro, renamed to their header names.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runMain(cfg, cc, args)
		}).
		WithSubs(
			RedumpCommand(cfg),
			NoIntroCommand(cfg),
		)
}

type archiveConfig struct {
	*MainConfig
	Cmd *cli.Command
}

func RedumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &archiveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Cmd, "redump").
		WithAliases("r").
		WithSynopsis("datmirror redump [opts]").
		WithDescription("mirror datfiles from redump.org only").
		WithRun(func(cc *cli.Context, args []string) error {
			return runArchive(cfg, cc, args, runRedump)
		})
}

func NoIntroCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &archiveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Cmd, "no-intro").
		WithAliases("n", "nointro").
		WithSynopsis("datmirror no-intro [opts]").
		WithDescription("mirror the no-intro daily bundle only").
		WithRun(func(cc *cli.Context, args []string) error {
			return runArchive(cfg, cc, args, runNoIntro)
		})
}
