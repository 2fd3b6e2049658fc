package node

// Visitor receives the nodes of a depth-first traversal. VisitBefore is
// called on entry to a node, before any of its attributes or children;
// VisitAfter on exit, after all of them. Terminate is consulted before
// entering any node and before each descent, so a visitor can abort as soon
// as it has what it needs.
//
// Visitors may mutate the tree being visited; the traversal snapshots each
// sibling sequence before descending, so adding or removing siblings of the
// node currently visited does not disturb the walk in flight.
type Visitor interface {
	VisitBefore(n *Node)
	VisitAfter(n *Node)
	Terminate() bool
}

// Visit walks the subtree rooted at n depth-first: VisitBefore(n), then n's
// attributes in order, then n's children in order, then VisitAfter(n).
// Sibling order is insertion order.
//
// When Terminate becomes true, no further nodes are entered, but VisitAfter
// still runs for every node already entered, so the visitor sees a
// structured unwind rather than a hard stop.
func (n *Node) Visit(v Visitor) {
	if v.Terminate() {
		return
	}
	v.VisitBefore(n)
	for _, a := range n.Attributes() {
		if v.Terminate() {
			break
		}
		a.Visit(v)
	}
	for _, c := range n.Children() {
		if v.Terminate() {
			break
		}
		c.Visit(v)
	}
	v.VisitAfter(n)
}

// Funcs adapts plain functions to the Visitor interface. Nil fields are
// no-ops; a nil Done never terminates.
type Funcs struct {
	Before func(n *Node)
	After  func(n *Node)
	Done   func() bool
}

func (f *Funcs) VisitBefore(n *Node) {
	if f.Before != nil {
		f.Before(n)
	}
}

func (f *Funcs) VisitAfter(n *Node) {
	if f.After != nil {
		f.After(n)
	}
}

func (f *Funcs) Terminate() bool {
	return f.Done != nil && f.Done()
}

// Find returns the first node in traversal order satisfying pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var res *Node
	n.Visit(&Funcs{
		Before: func(x *Node) {
			if res == nil && pred(x) {
				res = x
			}
		},
		Done: func() bool { return res != nil },
	})
	return res
}
