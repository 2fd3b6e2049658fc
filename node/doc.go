// Package node provides the tree data model for hierarchical configuration
// data.
//
// # Overview
//
// Configuration sources (YAML, JSON, programmatic construction) are
// represented as trees of Node values. A Node has a name, an opaque scalar
// value, an opaque reference, an ordered sequence of child nodes and an
// ordered sequence of attribute nodes. Attributes are nodes too, with
// KindAttribute; elements and attributes share one representation.
//
// Both sequences permit repeated names. Repeated same-named children are how
// list-valued configuration entries are represented, so no add operation
// rejects duplicates.
//
// # Creating Nodes
//
// Use the constructors to create nodes:
//
//	n := node.New("server")
//	n.Value = "localhost"
//	n.AddChild(node.New("port"))
//	n.AddAttribute(node.NewAttribute("env", "prod"))
//
// A freshly constructed node is detached; AddChild and AddAttribute set the
// child's Parent pointer. Removal detaches structurally but leaves the
// removed node's Parent pointer stale, since removed nodes are discarded.
//
// # Defined Nodes
//
// A node is "defined" when it carries at least one of: a value, a reference,
// a child, an attribute. Undefined nodes are the canonical soft-failure
// result for by-name lookups that find nothing.
//
// # Traversal
//
// Visit walks a subtree depth-first with before/after callbacks and
// cooperative early termination; see Visitor.
//
// # Thread Safety
//
// Node trees are not thread-safe. Synchronize externally or Clone per
// goroutine.
package node
