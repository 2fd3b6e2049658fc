package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns a dotted path locating n in its tree, e.g. "$.svc.host",
// "$.svc.item[2]" or "$.svc.@env". The index among same-named siblings is
// included only when the name is repeated; attributes carry an "@" prefix.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	prefix := n.Parent.Path() + "."
	if n.Kind == KindAttribute {
		return prefix + "@" + n.Name
	}
	sibs := n.Parent.ChildrenNamed(n.Name)
	if len(sibs) <= 1 {
		return prefix + n.Name
	}
	for i, s := range sibs {
		if s == n {
			return prefix + n.Name + "[" + strconv.Itoa(i) + "]"
		}
	}
	return prefix + n.Name
}

// GetPath navigates the subtree rooted at n along a path expression:
// dot-separated segments, each a child name, "name[i]" to pick the i-th
// same-named child, or "@name" for an attribute. A leading "$." (or a bare
// "$") refers to n itself.
//
// A well-formed path that matches nothing returns (nil, nil); only a
// malformed expression returns an error. This mirrors the soft-failure
// contract of the by-name accessors.
func (n *Node) GetPath(path string) (*Node, error) {
	rest := path
	if rest == "$" {
		return n, nil
	}
	rest = strings.TrimPrefix(rest, "$.")
	res := n
	for _, seg := range strings.Split(rest, ".") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, path)
		}
		if seg[0] == '@' {
			if len(seg) == 1 {
				return nil, fmt.Errorf("%w: empty attribute name in %q", ErrPath, path)
			}
			res = res.Attribute(seg[1:])
			if res == nil {
				return nil, nil
			}
			continue
		}
		name, index, err := splitIndex(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v in %q", ErrPath, err, path)
		}
		matches := res.ChildrenNamed(name)
		if index >= len(matches) {
			return nil, nil
		}
		res = matches[index]
	}
	return res, nil
}

func splitIndex(seg string) (name string, index int, err error) {
	i := strings.IndexByte(seg, '[')
	if i == -1 {
		return seg, 0, nil
	}
	if !strings.HasSuffix(seg, "]") {
		return "", 0, fmt.Errorf("unclosed index in segment %q", seg)
	}
	u, err := strconv.ParseUint(seg[i+1:len(seg)-1], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("bad index in segment %q", seg)
	}
	return seg[:i], int(u), nil
}
