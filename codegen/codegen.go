// codegen is a library for assembling trees of emittable nodes and rendering
// them as indented source text. Callers build a tree bottom-up with the
// constructors in this package and nothing is written until Render walks the
// finished tree. When implementing node types for this library, the following
// rules should apply:
//
// 1. A node's Lines method must produce a fresh sequence from the node's
// current state on every call. Storing iterator state on the node breaks
// repeated rendering, which must always yield identical output.
// 2. Constructors must reject inputs that violate the node contract before
// returning, so that no partially built node ever escapes into a tree. A nil
// node where a node is required is a programmer error and panics.
// 3. Rendering performs no I/O and never mutates the tree. Once a tree is
// validly constructed, line production cannot fail.
//
// The text fragments callers supply (conditions, expressions, lvalues) are
// opaque strings. This package never parses or validates them.
package codegen

import (
	"iter"
	"strings"
	"unicode"
)

// indentUnit is the whitespace prefix added once per nesting level. Nesting
// depth is realized by containers applying this prefix as they nest, not by
// a stored depth counter.
const indentUnit = "    "

// Node is any entity that can produce a finite, ordered sequence of output
// lines. Lines must be restartable: each call yields a fresh sequence.
// Individual lines contain no line breaks and are not required to be
// right-trimmed.
type Node interface {
	Lines() iter.Seq[string]
}

// Render joins a node's lines into one text blob, right-trimming each line
// and separating lines with a single newline.
func Render(n Node) string {
	var sb strings.Builder
	first := true
	for line := range n.Lines() {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return sb.String()
}

// oneLine adapts a single line to the Node line sequence shape.
func oneLine(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(line)
	}
}
