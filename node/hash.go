package node

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal trees hash equal within a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the subtree rooted at n,
// covering kind, name, value, attributes and children but not Reference.
// Useful for deduplication and as a fast inequality test.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("node: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Kind))
	h.WriteString(n.Name)
	hashValue(&h, n.Value)

	var b [8]byte
	for _, a := range n.attributes {
		binary.LittleEndian.PutUint64(b[:], a.Hash())
		h.Write(b[:])
	}
	h.WriteByte(0xff)
	for _, c := range n.children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

func hashValue(h *maphash.Hash, v any) {
	switch x := v.(type) {
	case nil:
		h.WriteByte(0)
	case bool:
		if x {
			h.WriteByte(2)
		} else {
			h.WriteByte(1)
		}
	case int:
		hashInt(h, int64(x))
	case int64:
		hashInt(h, x)
	case float64:
		var b [8]byte
		h.WriteByte(4)
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(x))
		h.Write(b[:])
	case string:
		h.WriteByte(5)
		h.WriteString(x)
	default:
		h.WriteByte(6)
		h.WriteString(fmt.Sprint(v))
	}
}

func hashInt(h *maphash.Hash, v int64) {
	var b [8]byte
	h.WriteByte(3)
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	h.Write(b[:])
}
