package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/conftree/conftree/encode"
	"github.com/conftree/conftree/patch"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchJSON, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	apply := patch.Apply
	if cfg.MergePatch {
		apply = patch.Merge
	}
	res, err := apply(doc, patchJSON)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
