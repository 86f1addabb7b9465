package codegen

import (
	"iter"
	"slices"
)

// block is satisfied by both container variants. Flattening and body
// wrapping assert against it rather than the concrete types so that
// Collection, which embeds Suite, is covered by the same assertion.
type block interface {
	Node
	rawContents() []Node
}

// flattenContents splices the children of any block-shaped element into the
// result in place of the block itself, recursively. Non-block elements pass
// through unchanged. Both container variants are absorbed, so a Collection
// supplied through a constructor loses its non-indenting behavior.
func flattenContents(contents []Node) []Node {
	result := make([]Node, 0, len(contents))
	for _, el := range contents {
		if el == nil {
			panic("codegen: nil node in block contents")
		}
		if b, ok := el.(block); ok {
			result = append(result, flattenContents(b.rawContents())...)
			continue
		}
		result = append(result, el)
	}
	return result
}

// Suite is an ordered collection of child nodes rendered with one added
// indentation unit per child line.
type Suite struct {
	contents []Node
}

// NewSuite builds an indenting block from the given children. Any child
// that is itself a block is replaced by its own flattened children, spliced
// in at the same position; this normalization runs once, here, and is not
// re-applied by the mutators. An empty input produces a suite holding a
// single Pass placeholder, so an indenting block is never logically empty.
func NewSuite(contents ...Node) *Suite {
	flat := flattenContents(contents)
	if len(flat) == 0 {
		flat = []Node{Pass{}}
	}
	return &Suite{contents: flat}
}

func (s *Suite) rawContents() []Node { return s.contents }

func (s *Suite) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range s.contents {
			for line := range item.Lines() {
				if !yield(indentUnit + line) {
					return
				}
			}
		}
	}
}

// Append adds one child at the end. Unlike construction, no flattening is
// applied: a block appended here stays a nested block and indents again
// independently at render time.
func (s *Suite) Append(n Node) {
	if n == nil {
		panic("codegen: nil node appended to block")
	}
	s.contents = append(s.contents, n)
}

// Extend adds the given children in order, without flattening.
func (s *Suite) Extend(nodes ...Node) {
	for _, n := range nodes {
		s.Append(n)
	}
}

// Insert adds one child at position i, without flattening.
func (s *Suite) Insert(i int, n Node) {
	if n == nil {
		panic("codegen: nil node inserted into block")
	}
	s.contents = slices.Insert(s.contents, i, n)
}

// ExtendGroup appends a comment line carrying label, then the given
// children in order, then one blank separator line. No flattening is
// applied.
func (s *Suite) ExtendGroup(label string, nodes ...Node) {
	s.Append(NewComment(label))
	s.Extend(nodes...)
	s.Append(BlankLine())
}

// Collection is like Suite but renders its children verbatim, without
// adding an indentation level. It is used purely for grouping.
type Collection struct {
	Suite
}

// NewCollection builds a non-indenting block from the given children,
// applying the same one-time flattening and empty-input normalization as
// NewSuite.
func NewCollection(contents ...Node) *Collection {
	return &Collection{Suite: *NewSuite(contents...)}
}

func (c *Collection) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range c.contents {
			for line := range item.Lines() {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// SuiteIfNecessary returns the sole element of contents unchanged, or wraps
// contents in a new Suite when there is more or less than one element.
func SuiteIfNecessary(contents []Node) Node {
	if len(contents) == 1 {
		return contents[0]
	}
	return NewSuite(contents...)
}

// asBlock wraps a node in an indenting block unless it is already
// block-shaped. Composite constructors use it to normalize their bodies.
func asBlock(n Node) Node {
	if n == nil {
		panic("codegen: nil node used as a block body")
	}
	if _, ok := n.(block); ok {
		return n
	}
	return NewSuite(n)
}
