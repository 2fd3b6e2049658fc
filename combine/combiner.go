package combine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/conftree/conftree/node"
)

// ErrNilNode reports a nil root passed to Combine.
var ErrNilNode = errors.New("combine: nil node")

// Combiner merges two node trees into one. Combine must not mutate either
// input tree; both must be usable again after the call, including by a
// second, different combiner.
type Combiner interface {
	Combine(n1, n2 *node.Node) (*node.Node, error)
}

// ListCombiner is a Combiner with a configurable list-node set. All
// combiners in this package implement it.
type ListCombiner interface {
	Combiner
	AddListNode(name string)
	ListNodes() []string
}

// NewNamed returns a combiner by policy name: "override" (the default when
// empty), "union" or "merge".
func NewNamed(policy string) (ListCombiner, error) {
	switch policy {
	case "override", "":
		return NewOverride(), nil
	case "union":
		return NewUnion(), nil
	case "merge":
		return NewMerge(), nil
	}
	return nil, fmt.Errorf("unknown combine policy %q", policy)
}

// BaseCombiner carries the policy-invariant state shared by the concrete
// combiners: the set of list-node names and the view-node factory.
type BaseCombiner struct {
	// NewView, when non-nil, replaces the default view-node factory. It
	// must return a fresh, detached, empty node.
	NewView func() *node.Node

	// IsList, when non-nil, replaces the default list-node predicate of
	// name membership in the registered set.
	IsList func(n *node.Node) bool

	listNodes map[string]struct{}
}

// AddListNode registers a node name as list-like. Registration is
// idempotent; the set semantics make repeated calls no-ops.
func (b *BaseCombiner) AddListNode(name string) {
	if b.listNodes == nil {
		b.listNodes = map[string]struct{}{}
	}
	b.listNodes[name] = struct{}{}
}

// ListNodes returns the registered list-node names, sorted.
func (b *BaseCombiner) ListNodes() []string {
	res := make([]string, 0, len(b.listNodes))
	for name := range b.listNodes {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// IsListNode reports whether n is treated as a list node, honoring the
// predicate seam. The default policy is membership of n's name in the
// registered set.
func (b *BaseCombiner) IsListNode(n *node.Node) bool {
	if b.IsList != nil {
		return b.IsList(n)
	}
	_, ok := b.listNodes[n.Name]
	return ok
}

// viewNode returns a fresh detached view node, honoring the factory seam.
func (b *BaseCombiner) viewNode() *node.Node {
	if b.NewView != nil {
		return b.NewView()
	}
	return node.New("")
}

// ViewOf returns a view of src: a detached node mirroring src's name, value
// and structure, with each node's Reference pointing back at the source
// node it mirrors. src itself is left untouched.
func (b *BaseCombiner) ViewOf(src *node.Node) *node.Node {
	res := b.viewNode()
	res.Name = src.Name
	res.Value = src.Value
	res.Reference = src
	for _, a := range src.Attributes() {
		res.AddAttribute(b.ViewOf(a))
	}
	for _, c := range src.Children() {
		res.AddChild(b.ViewOf(c))
	}
	return res
}

// attrNames collects the attribute names present on n.
func attrNames(n *node.Node) map[string]struct{} {
	res := make(map[string]struct{}, n.AttributeCount())
	for _, a := range n.Attributes() {
		res[a.Name] = struct{}{}
	}
	return res
}
