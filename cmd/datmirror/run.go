package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/mirrordat/datmirror/config"
	"github.com/mirrordat/datmirror/fetch"
	"github.com/mirrordat/datmirror/nointro"
	"github.com/mirrordat/datmirror/redump"
	"github.com/mirrordat/datmirror/store"
	"github.com/mirrordat/datmirror/sysfilter"
)

// runEnv is everything a pipeline run needs beyond its own archive
// settings.
type runEnv struct {
	cfg    *config.Config
	filter *sysfilter.Filter
	log    *slog.Logger
}

type archiveRun func(ctx context.Context, env *runEnv) ([]*store.Result, error)

func runMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return runArchives(cfg, cc, runRedump, runNoIntro)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

func runArchive(cfg *archiveConfig, cc *cli.Context, args []string, run archiveRun) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected argument %q", cli.ErrUsage, args[0])
	}
	return runArchives(cfg.MainConfig, cc, run)
}

func runArchives(cfg *MainConfig, cc *cli.Context, runs ...archiveRun) error {
	env, err := buildEnv(cfg)
	if err != nil {
		return err
	}

	ctx := cc.Go
	if ctx == nil {
		ctx = context.Background()
	}
	var results []*store.Result
	for _, run := range runs {
		rs, err := run(ctx, env)
		if err != nil {
			return err
		}
		results = append(results, rs...)
	}

	printResults(cc.Out, results, useColor(cfg))
	return nil
}

func buildEnv(cfg *MainConfig) (*runEnv, error) {
	rc := config.Default()
	if cfg.Config != "" {
		var err error
		rc, err = config.Load(cfg.Config)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Out != "" {
		rc.OutputDir = cfg.Out
	}
	if cfg.Clean {
		rc.Clean = true
	}
	if cfg.Filter != "" {
		rc.Filter = cfg.Filter
	}

	filter, err := sysfilter.Compile(rc.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	return &runEnv{
		cfg:    rc,
		filter: filter,
		log:    newLogger(cfg.Verbose),
	}, nil
}

// prepareDir computes an archive's output dir, honoring clean.
func prepareDir(env *runEnv, ar *config.Archive) (string, error) {
	dir := filepath.Join(env.cfg.OutputDir, ar.Subdir)
	if env.cfg.Clean {
		if err := os.RemoveAll(dir); err != nil {
			return "", err
		}
	}
	return dir, nil
}

func runRedump(ctx context.Context, env *runEnv) ([]*store.Result, error) {
	ar := &env.cfg.Redump
	if ar.Disabled {
		env.log.Info("redump disabled, skipping")
		return nil, nil
	}
	dir, err := prepareDir(env, ar)
	if err != nil {
		return nil, err
	}
	session, err := fetch.NewSession(ar.URL,
		fetch.WithTimeout(env.cfg.Timeout), fetch.WithRetries(env.cfg.Retries))
	if err != nil {
		return nil, err
	}
	m := &redump.Mirror{
		Session: session,
		Filter:  env.filter,
		Log:     env.log.With("archive", "redump"),
		OutDir:  dir,
	}
	return m.Run(ctx)
}

func runNoIntro(ctx context.Context, env *runEnv) ([]*store.Result, error) {
	ar := &env.cfg.NoIntro
	if ar.Disabled {
		env.log.Info("no-intro disabled, skipping")
		return nil, nil
	}
	dir, err := prepareDir(env, ar)
	if err != nil {
		return nil, err
	}
	session, err := fetch.NewSession("",
		fetch.WithTimeout(env.cfg.Timeout), fetch.WithRetries(env.cfg.Retries))
	if err != nil {
		return nil, err
	}
	m := &nointro.Mirror{
		Session:  session,
		Filter:   env.filter,
		Log:      env.log.With("archive", "no-intro"),
		OutDir:   dir,
		StartURL: ar.URL,
	}
	return m.Run(ctx)
}
