package combine

import (
	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/node"
)

// UnionCombiner keeps data from both trees. Children are concatenated,
// the first tree's in order and then the second's, except that a valueless
// structural child whose name occurs exactly once on each side (and is not
// a list node) is combined recursively, so disjoint nested structure folds
// into a single subtree. Attributes from both sides are kept; an attribute
// of the second tree identical in name and value to one already taken from
// the first collapses into it.
type UnionCombiner struct {
	BaseCombiner
}

// NewUnion returns a UnionCombiner with an empty list-node set.
func NewUnion() *UnionCombiner {
	return &UnionCombiner{}
}

func (c *UnionCombiner) Combine(n1, n2 *node.Node) (*node.Node, error) {
	if n1 == nil || n2 == nil {
		return nil, ErrNilNode
	}
	if debug.Combine() {
		debug.Logf("union combine %s with %s\n", n1.Path(), n2.Path())
	}
	res := c.viewNode()
	res.Name = n1.Name
	res.Reference = n1
	res.Value = n1.Value
	if res.Value == nil {
		res.Value = n2.Value
	}
	c.unionAttributes(res, n1, n2)

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

// matchChild decides whether child of n1 folds into a child of n2. Only
// valueless structural nodes, unique by name on both sides and not list
// nodes, are folded; everything else is concatenated.
func (c *UnionCombiner) matchChild(n1, n2, child *node.Node) *node.Node {
	if child.Value != nil || c.IsListNode(child) {
		return nil
	}
	if n1.ChildCountNamed(child.Name) != 1 {
		return nil
	}
	matches := n2.ChildrenNamed(child.Name)
	if len(matches) != 1 || matches[0].Value != nil {
		return nil
	}
	return matches[0]
}

// unionAttributes keeps attributes from both sides, collapsing exact
// duplicates. The structural hash weeds out non-duplicates cheaply before
// the full comparison confirms.
func (c *UnionCombiner) unionAttributes(res, n1, n2 *node.Node) {
	seen := map[uint64][]*node.Node{}
	for _, a := range n1.Attributes() {
		res.AddAttribute(c.ViewOf(a))
		seen[a.Hash()] = append(seen[a.Hash()], a)
	}
	for _, a := range n2.Attributes() {
		dup := false
		for _, prev := range seen[a.Hash()] {
			if node.Compare(prev, a) == 0 {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		res.AddAttribute(c.ViewOf(a))
	}
}
