package combine

import (
	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/node"
)

// MergeCombiner merges like OverrideCombiner but is stricter about what
// counts as the same logical node: a child pair additionally needs
// compatible attributes, meaning no attribute name carried by both with
// differing values. Incompatible same-named children survive side by side, which
// suits documents where an identifying attribute distinguishes repeated
// elements.
type MergeCombiner struct {
	BaseCombiner
}

// NewMerge returns a MergeCombiner with an empty list-node set.
func NewMerge() *MergeCombiner {
	return &MergeCombiner{}
}

func (c *MergeCombiner) Combine(n1, n2 *node.Node) (*node.Node, error) {
	if n1 == nil || n2 == nil {
		return nil, ErrNilNode
	}
	if debug.Combine() {
		debug.Logf("merge combine %s with %s\n", n1.Path(), n2.Path())
	}
	res := c.viewNode()
	res.Name = n1.Name
	res.Reference = n1
	if n1.Value != nil {
		res.Value = n1.Value
	} else {
		res.Value = n2.Value
	}
	c.mergeAttributes(res, n1, n2)

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
	return res, nil
}

// matchChild pairs child with the single same-named child of n2 whose
// attributes are compatible with child's. List nodes and repeated names
// never pair.
func (c *MergeCombiner) matchChild(n1, n2, child *node.Node) *node.Node {
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
	if !compatibleAttributes(child, matches[0]) {
		return nil
	}
	return matches[0]
}

// compatibleAttributes reports whether no attribute name carried by both
// nodes has differing values.
func compatibleAttributes(a, b *node.Node) bool {
	for _, attrA := range a.Attributes() {
		attrB := b.Attribute(attrA.Name)
		if attrB == nil {
			continue
		}
		if node.Compare(attrA, attrB) != 0 {
			return false
		}
	}
	return true
}

// mergeAttributes unions the attribute lists with first-tree precedence on
// name conflicts.
func (c *MergeCombiner) mergeAttributes(res, n1, n2 *node.Node) {
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
