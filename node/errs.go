package node

import "errors"

var (
	// ErrIndexOutOfRange reports an out-of-range index on Child or
	// AttributeAt.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPath reports a malformed path expression.
	ErrPath = errors.New("bad path")
)
