package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/conftree/conftree/diff"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	out, differs, err := diff.Lines(a, b, cfg.encOpts(cc.Out)...)
	if err != nil {
		return err
	}
	if !differs {
		return nil
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
