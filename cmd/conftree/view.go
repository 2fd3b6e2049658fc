package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/conftree/conftree/encode"
	"github.com/conftree/conftree/node"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		n, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := viewNode(cfg, cc.Out, n); err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewNode(cfg *ViewConfig, w io.Writer, n *node.Node) error {
	if cfg.Dump {
		return encode.Dump(n, w, cfg.encOpts(w)...)
	}
	return encode.Encode(n, w, cfg.encOpts(w)...)
}
