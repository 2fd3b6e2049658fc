package node

import (
	"errors"
	"testing"
)

func TestDefined(t *testing.T) {
	n := New("empty")
	if n.Defined() {
		t.Errorf("fresh node reports defined")
	}
	set := []struct {
		name string
		mod  func(*Node)
	}{
		{"value", func(n *Node) { n.Value = 1 }},
		{"reference", func(n *Node) { n.Reference = "ref" }},
		{"child", func(n *Node) { n.AddChild(New("c")) }},
		{"attribute", func(n *Node) { n.AddAttribute(NewAttribute("a", 1)) }},
	}
	for _, tc := range set {
		n := New("x")
		tc.mod(n)
		if !n.Defined() {
			t.Errorf("%s: node not defined after set", tc.name)
		}
	}
}

func TestChildren(t *testing.T) {
	root := New("root")
	a1 := New("a")
	b := New("b")
	a2 := New("a")
	root.AddChild(a1)
	root.AddChild(b)
	root.AddChild(a2)

	if root.ChildCount() != 3 {
		t.Fatalf("child count: got %d want 3", root.ChildCount())
	}
	as := root.ChildrenNamed("a")
	if len(as) != 2 || as[0] != a1 || as[1] != a2 {
		t.Errorf("ChildrenNamed(a) wrong: %v", as)
	}
	if got := root.ChildCountNamed("a"); got != len(as) {
		t.Errorf("count-by-name %d != len(ChildrenNamed) %d", got, len(as))
	}
	if len(root.ChildrenNamed("missing")) != 0 {
		t.Errorf("missing name should give empty sequence")
	}
	for _, c := range root.Children() {
		if c.Parent != root {
			t.Errorf("child %q parent not set", c.Name)
		}
	}

	c, err := root.Child(1)
	if err != nil || c != b {
		t.Errorf("Child(1): got %v, %v", c, err)
	}
	if _, err := root.Child(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Child(3): want ErrIndexOutOfRange, got %v", err)
	}
	if _, err := root.Child(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Child(-1): want ErrIndexOutOfRange, got %v", err)
	}
}

func TestRemoveChild(t *testing.T) {
	root := New("root")
	a1, a2, b := New("a"), New("a"), New("b")
	root.AddChild(a1)
	root.AddChild(b)
	root.AddChild(a2)

	if !root.RemoveChild(b) {
		t.Fatalf("RemoveChild(b) returned false")
	}
	if root.RemoveChild(b) {
		t.Errorf("second RemoveChild(b) returned true")
	}
	if !root.RemoveChildrenNamed("a") {
		t.Fatalf("RemoveChildrenNamed(a) returned false")
	}
	if root.ChildCount() != 0 {
		t.Errorf("children left after removals: %d", root.ChildCount())
	}

	root.AddChild(New("x"))
	root.AddChild(New("y"))
	root.RemoveChildren()
	if root.ChildCount() != 0 {
		t.Errorf("RemoveChildren left %d children", root.ChildCount())
	}
}

func TestAttributes(t *testing.T) {
	n := New("n")
	a := NewAttribute("env", "prod")
	b := NewAttribute("env", "dev")
	n.AddAttribute(a)
	n.AddAttribute(b)

	if !a.IsAttribute() {
		t.Errorf("attribute kind not set")
	}
	if n.AttributeCount() != 2 || n.AttributeCountNamed("env") != 2 {
		t.Errorf("attribute counts wrong")
	}
	if got := n.Attribute("env"); got != a {
		t.Errorf("Attribute(env): got %v want first", got)
	}
	if n.Attribute("missing") != nil {
		t.Errorf("missing attribute should be nil")
	}
	at, err := n.AttributeAt(1)
	if err != nil || at != b {
		t.Errorf("AttributeAt(1): got %v, %v", at, err)
	}
	if _, err := n.AttributeAt(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("AttributeAt(2): want ErrIndexOutOfRange, got %v", err)
	}
	if !n.RemoveAttribute(a) || n.AttributeCount() != 1 {
		t.Errorf("RemoveAttribute failed")
	}
	if !n.RemoveAttributesNamed("env") || n.AttributeCount() != 0 {
		t.Errorf("RemoveAttributesNamed failed")
	}
}

func TestClone(t *testing.T) {
	root := New("root")
	root.Value = "v"
	root.Reference = "ref"
	root.AddAttribute(NewAttribute("a", 1))
	child := New("child")
	child.AddChild(New("leaf"))
	root.AddChild(child)

	dup := root.Clone()
	if dup.Parent != nil {
		t.Errorf("clone root has a parent")
	}
	if !Equal(root, dup) {
		t.Fatalf("clone not structurally equal")
	}
	if dup.Reference != root.Reference {
		t.Errorf("reference not carried (shallow copy expected)")
	}

	// the clone must be independent
	c0, _ := dup.Child(0)
	c0.AddChild(New("extra"))
	if Equal(root, dup) {
		t.Errorf("mutating clone affected original")
	}
	orig, _ := root.Child(0)
	if orig.ChildCount() != 1 {
		t.Errorf("original gained a child from clone mutation")
	}
}

func TestRoot(t *testing.T) {
	root := New("root")
	mid := New("mid")
	leaf := New("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	if leaf.Root() != root || root.Root() != root {
		t.Errorf("Root() wrong")
	}
}
