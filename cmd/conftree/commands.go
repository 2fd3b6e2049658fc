package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "conftree").
		WithSynopsis("conftree [opts] command [opts]").
		WithDescription("conftree combines and inspects hierarchical configuration trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			cfg.Main.Usage(cc, nil)
			return nil
		}).
		WithSubs(
			CombineCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func CombineCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CombineConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "l",
		Aliases:     []string{"list"},
		Description: "register a list node name (repeatable)",
		Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
			cfg.listNodes = append(cfg.listNodes, a)
			return a, nil
		}), "(name)"),
	})
	cmd := cli.NewCommand("combine").
		WithAliases("c", "co").
		WithSynopsis("combine [-p policy] [-l name]... file [files]").
		WithDescription("combine configuration files left to right into one tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return combineRun(cfg, cc, args)
		})
	cfg.Combine = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("parse and re-render configuration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [file]").
		WithDescription("get a tree element by path, e.g. svc.host or svc.@env").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("show line differences between two configuration trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [-m] <patchfile> [docfile]").
		WithDescription("apply a json patch to a configuration tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchRun(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
