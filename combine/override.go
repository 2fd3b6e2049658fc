package combine

import (
	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/node"
)

// OverrideCombiner merges two trees with first-tree precedence: where both
// trees define the same singleton child, the pair is combined recursively
// and the first tree wins value and attribute conflicts. Children are
// matched by name, and only when the name occurs exactly once in each
// tree's child sequence; repeated names and registered list nodes pass
// through from both sides unmatched.
type OverrideCombiner struct {
	BaseCombiner
}

// NewOverride returns an OverrideCombiner with an empty list-node set.
func NewOverride() *OverrideCombiner {
	return &OverrideCombiner{}
}

func (c *OverrideCombiner) Combine(n1, n2 *node.Node) (*node.Node, error) {
	if n1 == nil || n2 == nil {
		return nil, ErrNilNode
	}
	if debug.Combine() {
		debug.Logf("override combine %s with %s\n", n1.Path(), n2.Path())
	}
	res := c.viewNode()
	res.Name = n1.Name
	res.Reference = n1
	c.overrideAttributes(res, n1, n2)

	consumed := map[*node.Node]bool{}
	for _, c1 := range n1.Children() {
		c2 := c.matchChild(n1, n2, c1)
		if c2 == nil {
			res.AddChild(c.ViewOf(c1))
			continue
		}
		sub, err := c.Combine(c1, c2)
		if err != nil {
			return nil, err
		}
		res.AddChild(sub)
		consumed[c2] = true
	}
	for _, c2 := range n2.Children() {
		if consumed[c2] {
			continue
		}
		res.AddChild(c.ViewOf(c2))
	}

	if n1.Value != nil {
		res.Value = n1.Value
	} else {
		res.Value = n2.Value
	}
	return res, nil
}

// matchChild finds the partner of child in n2, or nil when child passes
// through unmatched. A pair forms only for non-list nodes whose name occurs
// exactly once on each side.
func (c *OverrideCombiner) matchChild(n1, n2, child *node.Node) *node.Node {
	if c.IsListNode(child) {
		return nil
	}
	if n1.ChildCountNamed(child.Name) != 1 {
		return nil
	}
	matches := n2.ChildrenNamed(child.Name)
	if len(matches) != 1 {
		return nil
	}
	return matches[0]
}

// overrideAttributes appends views of n1's attributes, then of those n2
// attributes whose name n1 does not carry at all.
func (c *OverrideCombiner) overrideAttributes(res, n1, n2 *node.Node) {
	for _, a := range n1.Attributes() {
		res.AddAttribute(c.ViewOf(a))
	}
	have := attrNames(n1)
	for _, a := range n2.Attributes() {
		if _, ok := have[a.Name]; ok {
			continue
		}
		res.AddAttribute(c.ViewOf(a))
	}
}
