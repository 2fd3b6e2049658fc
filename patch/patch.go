// Package patch applies JSON patches to configuration node trees by
// round-tripping through JSON: the tree is encoded, patched and parsed
// back. Both RFC 6902 operation patches and RFC 7386 merge patches are
// supported.
package patch

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/conftree/conftree/debug"
	"github.com/conftree/conftree/encode"
	"github.com/conftree/conftree/node"
	"github.com/conftree/conftree/parse"
)

// Apply applies an RFC 6902 operations patch to doc and returns the patched
// tree. doc is not mutated.
func Apply(doc *node.Node, patchJSON []byte) (*node.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return rewrite(doc, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// Merge applies an RFC 7386 merge patch to doc and returns the patched
// tree. doc is not mutated.
func Merge(doc *node.Node, patchJSON []byte) (*node.Node, error) {
	return rewrite(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patchJSON)
	})
}

func rewrite(doc *node.Node, apply func([]byte) ([]byte, error)) (*node.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("patch: nil document")
	}
	if debug.Patch() {
		debug.Logf("patch %s\n", doc.Path())
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeFormat(encode.JSON)); err != nil {
		return nil, err
	}
	out, err := apply(bytes.TrimSpace(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	return parse.Parse(out, parse.RootName(doc.Name))
}
