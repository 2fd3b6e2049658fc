package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/conftree/conftree/node"
	"github.com/conftree/conftree/parse"
)

// getObjFile parses the file at path, with "-" meaning the command's input.
func getObjFile(cc *cli.Context, path string, opts ...parse.Option) (*node.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}
