// Package parse builds configuration node trees from YAML or JSON
// documents (JSON being a YAML subset, one entry point covers both).
//
// Mappings become element nodes with one child per entry in document order.
// Sequences become repeated same-named children, the list representation of
// the node model. Keys carrying the attribute prefix ("@" unless
// configured) become attribute nodes.
package parse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/node"
)

const (
	DefaultRootName   = "config"
	DefaultAttrPrefix = "@"
)

// Parse decodes d and builds a node tree. The document root must be a
// mapping or a scalar; a scalar root yields a root node carrying it as
// value.
func Parse(d []byte, opts ...Option) (*node.Node, error) {
	cfg := newConfig(opts)
	if len(bytes.TrimSpace(d)) == 0 {
		return node.New(cfg.rootName), nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if debug.Parse() {
		debug.Logf("parse: decoded %T\n", v)
	}
	root := node.New(cfg.rootName)
	switch x := v.(type) {
	case nil:
		return root, nil
	case yaml.MapSlice:
		if err := cfg.buildMapping(root, x); err != nil {
			return nil, err
		}
		return root, nil
	case []any:
		return nil, fmt.Errorf("parse: document root is a sequence; a mapping or scalar is required")
	default:
		root.Value = scalarValue(v)
		return root, nil
	}
}

func (cfg *config) buildMapping(parent *node.Node, m yaml.MapSlice) error {
	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			key = fmt.Sprint(item.Key)
		}
		if strings.HasPrefix(key, cfg.attrPrefix) {
			name := key[len(cfg.attrPrefix):]
			if name == "" {
				return fmt.Errorf("parse: empty attribute name at %s", parent.Path())
			}
			if err := cfg.buildAttribute(parent, name, item.Value); err != nil {
				return err
			}
			continue
		}
		if err := cfg.buildEntry(parent, key, item.Value); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *config) buildAttribute(parent *node.Node, name string, v any) error {
	switch v.(type) {
	case yaml.MapSlice, []any:
		return fmt.Errorf("parse: attribute %s of %s must be a scalar", name, parent.Path())
	}
	parent.AddAttribute(node.NewAttribute(name, scalarValue(v)))
	return nil
}

func (cfg *config) buildEntry(parent *node.Node, key string, v any) error {
	switch x := v.(type) {
	case yaml.MapSlice:
		child := node.New(key)
		parent.AddChild(child)
		return cfg.buildMapping(child, x)
	case []any:
		for _, elem := range x {
			if err := cfg.buildListElem(parent, key, elem); err != nil {
				return err
			}
		}
		return nil
	default:
		child := node.New(key)
		child.Value = scalarValue(v)
		parent.AddChild(child)
		return nil
	}
}

func (cfg *config) buildListElem(parent *node.Node, key string, elem any) error {
	switch x := elem.(type) {
	case yaml.MapSlice:
		child := node.New(key)
		parent.AddChild(child)
		return cfg.buildMapping(child, x)
	case []any:
		return fmt.Errorf("parse: nested sequence under %s at %s", key, parent.Path())
	default:
		child := node.New(key)
		child.Value = scalarValue(elem)
		parent.AddChild(child)
		return nil
	}
}

// scalarValue normalizes decoded scalars so that equal values compare equal
// regardless of the decoder's integer width choice.
func scalarValue(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case uint64:
		return int64(x)
	case int64, float64, bool, string, nil:
		return x
	default:
		return v
	}
}
