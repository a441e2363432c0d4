package main

import (
	"fmt"

	"github.com/oddl-format/go-oddl/ir"

	"github.com/scott-cotton/cli"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Types.Parse(cc, args); err != nil {
		return err
	}
	for _, t := range ir.DataTypes() {
		fmt.Fprintln(cc.Out, t)
	}
	return nil
}
