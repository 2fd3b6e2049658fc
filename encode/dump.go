package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/conftree/conftree/node"
)

// Dump writes an indented tree listing of n for human inspection, one node
// per line, attributes before children:
//
//	svc
//	  @env = prod
//	  host = localhost
func Dump(n *node.Node, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	return dump(n, w, cfg, 0)
}

func dump(n *node.Node, w io.Writer, cfg *config, depth int) error {
	indent := strings.Repeat("  ", depth)
	line := indent + cfg.colors.name(n.Name)
	if n.Value != nil {
		line += " = " + cfg.colors.value(fmt.Sprint(n.Value))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, a := range n.Attributes() {
		attrLine := indent + "  " + cfg.colors.attr(cfg.attrPrefix+a.Name) +
			" = " + cfg.colors.value(fmt.Sprint(a.Value))
		if _, err := fmt.Fprintln(w, attrLine); err != nil {
			return err
		}
	}
	for _, c := range n.Children() {
		if err := dump(c, w, cfg, depth+1); err != nil {
			return err
		}
	}
	return nil
}
