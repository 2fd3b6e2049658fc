package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/conftree/conftree/combine"
	"github.com/conftree/conftree/encode"
)

func combineRun(cfg *CombineConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Combine.Parse(cc, args)
	if err != nil {
		cfg.Combine.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: combine requires at least 1 file", cli.ErrUsage)
	}
	comb, err := combine.NewNamed(cfg.Policy)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, name := range cfg.listNodes {
		comb.AddListNode(name)
	}

	res, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, arg := range args[1:] {
		next, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err = comb.Combine(res, next)
		if err != nil {
			return fmt.Errorf("error combining %s: %w", arg, err)
		}
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
