package codegen

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Class is a named block: a header built from the class name and its base
// names, followed by member nodes at one added indentation level.
type Class struct {
	name       string
	bases      []string
	attributes []Node
}

// NewClass builds a class definition. An empty bases list defaults to a
// single "object" base in the header. Attribute nodes are rendered in order
// at one indentation level; they are not required to be a block.
func NewClass(name string, bases []string, attributes []Node) *Class {
	for _, attr := range attributes {
		if attr == nil {
			panic("codegen: nil node in class attributes")
		}
	}
	return &Class{
		name:       name,
		bases:      slices.Clone(bases),
		attributes: slices.Clone(attributes),
	}
}

func (c *Class) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		bases := c.bases
		if len(bases) == 0 {
			bases = []string{"object"}
		}
		if !yield(fmt.Sprintf("class %s(%s):", c.name, strings.Join(bases, ", "))) {
			return
		}
		for _, attr := range c.attributes {
			for line := range attr.Lines() {
				if !yield(indentUnit + line) {
					return
				}
			}
		}
	}
}

// Function is a callable definition: decorator lines, a signature built
// from the name and parameter names, and a body.
type Function struct {
	name       string
	args       []string
	decorators []string
	body       Node
}

// NewFunction builds a function definition. Decorator lines are emitted
// verbatim and unindented immediately before the signature. The body is
// wrapped in an indenting block unless already block-shaped.
func NewFunction(name string, args []string, body Node, decorators ...string) *Function {
	return &Function{
		name:       name,
		args:       slices.Clone(args),
		decorators: slices.Clone(decorators),
		body:       asBlock(body),
	}
}

func (f *Function) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, dec := range f.decorators {
			if !yield(dec) {
				return
			}
		}
		if !yield(fmt.Sprintf("def %s(%s):", f.name, strings.Join(f.args, ", "))) {
			return
		}
		for line := range f.body.Lines() {
			if !yield(line) {
				return
			}
		}
	}
}
