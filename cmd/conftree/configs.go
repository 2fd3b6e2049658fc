package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/conftree/conftree/encode"
	"github.com/conftree/conftree/parse"
)

type MainConfig struct {
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`

	Color bool   `cli:"name=color desc='colorize tree dumps'"`
	Attr  string `cli:"name=attr desc='attribute key prefix (default @)'"`
	Root  string `cli:"name=root desc='name of the document root node'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	var res []parse.Option
	if cfg.Attr != "" {
		res = append(res, parse.AttrPrefix(cfg.Attr))
	}
	if cfg.Root != "" {
		res = append(res, parse.RootName(cfg.Root))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	var res []encode.Option
	if cfg.J {
		res = append(res, encode.EncodeFormat(encode.JSON))
	}
	if cfg.Attr != "" {
		res = append(res, encode.AttrPrefix(cfg.Attr))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CombineConfig struct {
	*MainConfig

	Policy string `cli:"name=p aliases=policy desc='combine policy: override, union, merge'"`

	listNodes []string

	Combine *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Dump bool `cli:"name=d aliases=dump desc='print an indented tree listing'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	MergePatch bool `cli:"name=m aliases=merge desc='treat the patch as an rfc 7386 merge patch'"`

	Patch *cli.Command
}
