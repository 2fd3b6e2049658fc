// Package diff renders line-level differences between the encoded forms of
// two configuration trees, for human consumption (the CLI diff command).
package diff

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/conftree/conftree/encode"
	"github.com/conftree/conftree/node"
)

// Lines encodes a and b and returns a unified-style line diff ("-" lines
// from a, "+" lines from b). The boolean reports whether the two differ.
func Lines(a, b *node.Node, opts ...encode.Option) (string, bool, error) {
	ta, err := text(a, opts)
	if err != nil {
		return "", false, err
	}
	tb, err := text(b, opts)
	if err != nil {
		return "", false, err
	}
	if ta == tb {
		return "", false, nil
	}

	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ta, tb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), true, nil
}

func text(n *node.Node, opts []encode.Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
