package node

import (
	"fmt"
)

// Kind distinguishes element nodes from attribute nodes. The kind decides
// which sequence of its parent a node lives in: AddChild stores elements,
// AddAttribute stores attributes.
type Kind int8

const (
	KindElement Kind = iota
	KindAttribute
)

func (k Kind) String() string {
	if k == KindAttribute {
		return "attribute"
	}
	return "element"
}

// Node is a single element or attribute in a configuration tree.
//
// Value holds the node's scalar payload and is opaque to the tree. Reference
// is an implementation-specific token (for example a back-link into a source
// document or, for view nodes produced by combiners, the source node); it is
// never interpreted here and is copied shallowly by Clone.
type Node struct {
	Name      string
	Value     any
	Reference any
	Kind      Kind
	Parent    *Node

	children   []*Node
	attributes []*Node
}

// New returns a fresh detached element node.
func New(name string) *Node {
	return &Node{Name: name}
}

// NewAttribute returns a fresh detached attribute node.
func NewAttribute(name string, value any) *Node {
	return &Node{Name: name, Value: value, Kind: KindAttribute}
}

// IsAttribute reports whether the node is an attribute.
func (n *Node) IsAttribute() bool {
	return n.Kind == KindAttribute
}

// Defined reports whether the node carries any data: a value, a reference,
// a child or an attribute.
func (n *Node) Defined() bool {
	return n.Value != nil || n.Reference != nil ||
		len(n.children) != 0 || len(n.attributes) != 0
}

// Children returns a copy of the ordered child sequence. The result is never
// nil-unsafe to iterate; mutating it does not affect the node.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.children))
	copy(res, n.children)
	return res
}

// ChildrenNamed returns the children with the given name, preserving their
// relative order. The result is empty, never nil semantics, when no child
// matches.
func (n *Node) ChildrenNamed(name string) []*Node {
	return named(n.children, name)
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildCountNamed returns the number of children with the given name.
func (n *Node) ChildCountNamed(name string) int {
	return countNamed(n.children, name)
}

// Child returns the i-th child. Index out of range is the only hard failure
// of the data model; by-name lookups fail soft instead.
func (n *Node) Child(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: child %d of %q (have %d)",
			ErrIndexOutOfRange, i, n.Name, len(n.children))
	}
	return n.children[i], nil
}

// AddChild appends c to the child sequence, setting c's Parent to n and its
// Kind to KindElement. Duplicate names are permitted; repeated same-named
// children represent list values.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	c.Kind = KindElement
	n.children = append(n.children, c)
}

// RemoveChild removes the first child identical to c and reports whether
// anything was removed. It does not recurse and does not clear c's Parent.
func (n *Node) RemoveChild(c *Node) bool {
	var ok bool
	n.children, ok = remove(n.children, c)
	return ok
}

// RemoveChildrenNamed removes all children with the given name and reports
// whether anything was removed.
func (n *Node) RemoveChildrenNamed(name string) bool {
	var ok bool
	n.children, ok = removeNamed(n.children, name)
	return ok
}

// RemoveChildren clears the child sequence.
func (n *Node) RemoveChildren() {
	n.children = nil
}

// Attributes returns a copy of the ordered attribute sequence.
func (n *Node) Attributes() []*Node {
	res := make([]*Node, len(n.attributes))
	copy(res, n.attributes)
	return res
}

// AttributesNamed returns the attributes with the given name in order.
func (n *Node) AttributesNamed(name string) []*Node {
	return named(n.attributes, name)
}

// Attribute returns the first attribute with the given name, or nil.
func (n *Node) Attribute(name string) *Node {
	for _, a := range n.attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// AttributeCount returns the number of attributes.
func (n *Node) AttributeCount() int {
	return len(n.attributes)
}

// AttributeCountNamed returns the number of attributes with the given name.
func (n *Node) AttributeCountNamed(name string) int {
	return countNamed(n.attributes, name)
}

// AttributeAt returns the i-th attribute, failing like Child on a bad index.
func (n *Node) AttributeAt(i int) (*Node, error) {
	if i < 0 || i >= len(n.attributes) {
		return nil, fmt.Errorf("%w: attribute %d of %q (have %d)",
			ErrIndexOutOfRange, i, n.Name, len(n.attributes))
	}
	return n.attributes[i], nil
}

// AddAttribute appends a to the attribute sequence, setting a's Parent to n
// and its Kind to KindAttribute. Duplicate names are permitted.
func (n *Node) AddAttribute(a *Node) {
	a.Parent = n
	a.Kind = KindAttribute
	n.attributes = append(n.attributes, a)
}

// RemoveAttribute removes the first attribute identical to a.
func (n *Node) RemoveAttribute(a *Node) bool {
	var ok bool
	n.attributes, ok = remove(n.attributes, a)
	return ok
}

// RemoveAttributesNamed removes all attributes with the given name.
func (n *Node) RemoveAttributesNamed(name string) bool {
	var ok bool
	n.attributes, ok = removeNamed(n.attributes, name)
	return ok
}

// RemoveAttributes clears the attribute sequence.
func (n *Node) RemoveAttributes() {
	n.attributes = nil
}

// Root returns the root of the tree containing n.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Clone deep-copies the subtree rooted at n: the node, its attributes and
// its children, recursively. The clone is detached (nil Parent). Value and
// Reference are copied shallowly; their semantics are caller-defined.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.cloneTo(res)
	res.Parent = nil
	return res
}

func (n *Node) cloneTo(dst *Node) {
	dst.Name = n.Name
	dst.Value = n.Value
	dst.Reference = n.Reference
	dst.Kind = n.Kind
	dst.Parent = n.Parent
	dst.attributes = make([]*Node, len(n.attributes))
	for i, a := range n.attributes {
		dstA := &Node{}
		a.cloneTo(dstA)
		dstA.Parent = dst
		dst.attributes[i] = dstA
	}
	dst.children = make([]*Node, len(n.children))
	for i, c := range n.children {
		dstC := &Node{}
		c.cloneTo(dstC)
		dstC.Parent = dst
		dst.children[i] = dstC
	}
}

func named(seq []*Node, name string) []*Node {
	res := make([]*Node, 0, countNamed(seq, name))
	for _, n := range seq {
		if n.Name == name {
			res = append(res, n)
		}
	}
	return res
}

func countNamed(seq []*Node, name string) int {
	count := 0
	for _, n := range seq {
		if n.Name == name {
			count++
		}
	}
	return count
}

func remove(seq []*Node, target *Node) ([]*Node, bool) {
	for i, n := range seq {
		if n == target {
			return append(seq[:i], seq[i+1:]...), true
		}
	}
	return seq, false
}

func removeNamed(seq []*Node, name string) ([]*Node, bool) {
	res := seq[:0]
	removed := false
	for _, n := range seq {
		if n.Name == name {
			removed = true
			continue
		}
		res = append(res, n)
	}
	return res, removed
}
