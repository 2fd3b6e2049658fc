package node

import (
	"cmp"
	"fmt"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes are ordered by kind, then name, then value, then attributes, then
// children. Reference is opaque and excluded from comparison.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := compareValues(a.Value, b.Value); c != 0 {
		return c
	}
	if c := compareSeqs(a.attributes, b.attributes); c != 0 {
		return c
	}
	return compareSeqs(a.children, b.children)
}

// Equal reports whether a and b are structurally equal. The hash is a cheap
// first pass; a hash mismatch proves inequality without a full walk.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Hash() != b.Hash() {
		return false
	}
	return Compare(a, b) == 0
}

func compareSeqs(a, b []*Node) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareValues orders opaque scalar values: nil < bool < int < float <
// string < everything else. Unknown types fall back to their printed form.
func compareValues(a, b any) int {
	rankA, rankB := valueRank(a), valueRank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch av := a.(type) {
	case nil:
		return 0
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case int64:
		return cmp.Compare(av, toInt64(b))
	case int:
		return cmp.Compare(int64(av), toInt64(b))
	case float64:
		return cmp.Compare(av, b.(float64))
	case string:
		return strings.Compare(av, b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func valueRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int, int64:
		return 2
	case float64:
		return 3
	case string:
		return 4
	}
	return 5
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int64:
		return x
	}
	return 0
}
