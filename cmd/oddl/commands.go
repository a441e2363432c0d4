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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "r",
			Aliases:     []string{"round"},
			Description: "decimal places for float data (default 6)",
			Type:        cli.NamedFuncOpt(cfg.roundOpt, "(places)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, binary/b",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "oddl").
		WithSynopsis("oddl [opts] command [opts]").
		WithDescription("oddl is a tool for producing OpenDDL text documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oddlMain(cfg, cc, args)
		}).
		WithSubs(
			ExampleCommand(cfg),
			TypesCommand(cfg))
}

func ExampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExampleConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("example").
		WithAliases("ex").
		WithSynopsis("example").
		WithDescription("write a sample scene document").
		WithRun(func(cc *cli.Context, args []string) error {
			return example(cfg, cc, args)
		})
	cfg.Example = cmd
	return cmd
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list the primitive data type tokens").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
	cfg.Types = cmd
	return cmd
}
