package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "hl7").
		WithSynopsis("hl7 [opts] command [opts]").
		WithDescription("hl7 is a tool for addressing and editing HL7 v2 messages.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hl7Main(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			QueryCommand(cfg),
			SetCommand(cfg),
			DeleteCommand(cfg),
			AddCommand(cfg),
			InsertCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-e] [-r] <query> [files]").
		WithDescription("print values and addresses matched by a query").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query [-e] [-r] <query> [files]").
		WithDescription("print the static addresses matched by a query").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set <query> <value> [files] | set -clear <query> [files]").
		WithDescription("overwrite matched nodes, growing the tree as needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("delete").
		WithAliases("d", "del").
		WithSynopsis("delete <query> [files]").
		WithDescription("remove matched nodes, shifting later siblings down").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Delete = cmd
	return cmd
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("add").
		WithSynopsis("add <query> <value> [files]").
		WithDescription("append a value to each matched node's sequence").
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
	cfg.Add = cmd
	return cmd
}

func InsertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InsertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("insert").
		WithAliases("i", "ins").
		WithSynopsis("insert [-after] <query> <value> [files]").
		WithDescription("insert a value at each matched index, shifting right").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return insert(cfg, cc, args)
		})
	cfg.Insert = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view messages with separators in color, one segment per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <fileA> <fileB>").
		WithDescription("report per-address differences between two messages").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
