package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/conftree/conftree/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	path := args[0]
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	n, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := n.GetPath(path)
	if err != nil {
		return err
	}
	if res == nil {
		return cli.ExitCodeErr(1)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
