// Package encode renders configuration node trees as YAML or JSON, the
// inverse of package parse: repeated same-named children fold back into
// sequences and attributes render with the attribute prefix. Dump provides
// a human-oriented, optionally colorized tree listing.
package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/node"
)

// ValueKey is the reserved mapping key under which a node's own value is
// emitted when the node also has children or attributes.
const ValueKey = "#value"

// Encode renders the subtree rooted at n to w in the configured format.
func Encode(n *node.Node, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	if debug.Encode() {
		debug.Logf("encode %s as %s\n", n.Path(), cfg.format)
	}
	v := cfg.toValue(n)
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if cfg.format == JSON {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// toValue converts a subtree to plain Go values (yaml.MapSlice keeps entry
// order). Leaves collapse to their value.
func (cfg *config) toValue(n *node.Node) any {
	if n.ChildCount() == 0 && n.AttributeCount() == 0 {
		return n.Value
	}
	res := yaml.MapSlice{}
	for _, a := range n.Attributes() {
		res = append(res, yaml.MapItem{Key: cfg.attrPrefix + a.Name, Value: a.Value})
	}
	if n.Value != nil {
		res = append(res, yaml.MapItem{Key: ValueKey, Value: n.Value})
	}
	for _, name := range childNameOrder(n) {
		matches := n.ChildrenNamed(name)
		if len(matches) == 1 {
			res = append(res, yaml.MapItem{Key: name, Value: cfg.toValue(matches[0])})
			continue
		}
		seq := make([]any, len(matches))
		for i, m := range matches {
			seq[i] = cfg.toValue(m)
		}
		res = append(res, yaml.MapItem{Key: name, Value: seq})
	}
	return res
}

// childNameOrder returns the distinct child names in first-occurrence order.
func childNameOrder(n *node.Node) []string {
	var names []string
	seen := map[string]struct{}{}
	for _, c := range n.Children() {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	return names
}
