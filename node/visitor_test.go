package node

import (
	"slices"
	"testing"
)

// buildTree returns root with 2 children, the first of which has a child and
// an attribute: 6 nodes total.
func buildTree() *Node {
	root := New("root")
	a := New("a")
	a.AddAttribute(NewAttribute("attr", 1))
	a.AddChild(New("leaf"))
	root.AddChild(a)
	root.AddChild(New("b"))
	return root
}

type recorder struct {
	before []string
	after  []string
	stopAt string
	done   bool
}

func (r *recorder) VisitBefore(n *Node) {
	r.before = append(r.before, n.Name)
	if r.stopAt != "" && n.Name == r.stopAt {
		r.done = true
	}
}

func (r *recorder) VisitAfter(n *Node) {
	r.after = append(r.after, n.Name)
}

func (r *recorder) Terminate() bool { return r.done }

func TestVisitOrder(t *testing.T) {
	root := buildTree()
	rec := &recorder{}
	root.Visit(rec)

	wantBefore := []string{"root", "a", "attr", "leaf", "b"}
	wantAfter := []string{"attr", "leaf", "a", "b", "root"}
	if !slices.Equal(rec.before, wantBefore) {
		t.Errorf("before order: got %v want %v", rec.before, wantBefore)
	}
	if !slices.Equal(rec.after, wantAfter) {
		t.Errorf("after order: got %v want %v", rec.after, wantAfter)
	}
}

func TestVisitCompleteness(t *testing.T) {
	root := buildTree()
	rec := &recorder{}
	root.Visit(rec)
	if len(rec.before) != 5 || len(rec.after) != 5 {
		t.Errorf("callback counts: before %d after %d, want 5 each",
			len(rec.before), len(rec.after))
	}
}

func TestVisitTerminate(t *testing.T) {
	root := buildTree()
	rec := &recorder{stopAt: "leaf"}
	root.Visit(rec)

	wantBefore := []string{"root", "a", "attr", "leaf"}
	if !slices.Equal(rec.before, wantBefore) {
		t.Errorf("before order: got %v want %v", rec.before, wantBefore)
	}
	// nodes already entered still get their after callback, nothing else
	wantAfter := []string{"leaf", "a", "root"}
	if !slices.Equal(rec.after, wantAfter) {
		t.Errorf("after order: got %v want %v", rec.after, wantAfter)
	}
	if slices.Contains(rec.before, "b") {
		t.Errorf("sibling b entered after termination")
	}
}

func TestVisitorMutation(t *testing.T) {
	root := buildTree()
	// removing the node being visited must not disturb the walk
	var visited []string
	root.Visit(&Funcs{
		Before: func(n *Node) {
			visited = append(visited, n.Name)
			if n.Name == "a" {
				root.RemoveChild(n)
			}
		},
	})
	want := []string{"root", "a", "attr", "leaf", "b"}
	if !slices.Equal(visited, want) {
		t.Errorf("visited: got %v want %v", visited, want)
	}
	if root.ChildCount() != 1 {
		t.Errorf("removal during visit lost: %d children", root.ChildCount())
	}
}

func TestFind(t *testing.T) {
	root := buildTree()
	got := root.Find(func(n *Node) bool { return n.Name == "leaf" })
	if got == nil || got.Name != "leaf" {
		t.Fatalf("Find(leaf): got %v", got)
	}
	if root.Find(func(n *Node) bool { return n.Name == "nope" }) != nil {
		t.Errorf("Find(nope) should be nil")
	}
}
