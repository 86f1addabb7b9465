package codegen

import (
	"fmt"
	"iter"
	"strings"
)

// If is a conditional block with an optional else branch.
type If struct {
	condition string
	then      Node
	orelse    Node
}

// NewIf builds a conditional on condition with primary body then and
// optional alternate body orelse; pass nil for no alternate. Both bodies
// are wrapped in an indenting block unless already block-shaped. The
// condition may span multiple lines; a caller can pre-split a long boolean
// expression for readability and the header is bracketed accordingly.
func NewIf(condition string, then, orelse Node) *If {
	then = asBlock(then)
	if orelse != nil {
		orelse = asBlock(orelse)
	}
	return &If{condition: condition, then: then, orelse: orelse}
}

func (f *If) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		condLines := strings.Split(f.condition, "\n")
		if len(condLines) > 1 {
			if !yield("if (") {
				return
			}
			for _, cl := range condLines {
				if !yield(indentUnit + indentUnit + cl) {
					return
				}
			}
			if !yield("  ):") {
				return
			}
		} else {
			if !yield("if " + f.condition + ":") {
				return
			}
		}
		for line := range f.then.Lines() {
			if !yield(line) {
				return
			}
		}
		if f.orelse != nil {
			if !yield("else:") {
				return
			}
			for line := range f.orelse.Lines() {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// Loop is the shared shape behind every loop form: an optional header line,
// a body, and an optional footer line. Concrete loop kinds are
// configuration of this one structure, not separate types.
type Loop struct {
	header string
	footer string
	body   Node
}

// NewCustomLoop builds a loop with caller-supplied verbatim header and
// footer lines. An empty string omits that line. The body is rendered as
// given, without wrapping.
func NewCustomLoop(header string, body Node, footer string) *Loop {
	if body == nil {
		panic("codegen: nil loop body")
	}
	return &Loop{header: header, footer: footer, body: body}
}

// NewWhile builds a loop headed by the given condition expression. The body
// is rendered as given, without wrapping.
func NewWhile(condition string, body Node) *Loop {
	if body == nil {
		panic("codegen: nil loop body")
	}
	return &Loop{header: fmt.Sprintf("while (%s):", condition), body: body}
}

// NewFor builds an iteration loop over iterable binding the given loop
// variables, comma-joined for multi-variable unpacking. At least one
// variable name is required. The body is wrapped in an indenting block
// unless already block-shaped.
func NewFor(vars []string, iterable string, body Node) *Loop {
	if len(vars) == 0 {
		panic("codegen: for loop needs at least one variable")
	}
	return &Loop{
		header: fmt.Sprintf("for %s in %s:", strings.Join(vars, ", "), iterable),
		body:   asBlock(body),
	}
}

func (l *Loop) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if l.header != "" {
			if !yield(l.header) {
				return
			}
		}
		for line := range l.body.Lines() {
			if !yield(line) {
				return
			}
		}
		if l.footer != "" {
			if !yield(l.footer) {
				return
			}
		}
	}
}

// ConditionBlock pairs one condition with the block it guards in an if
// chain.
type ConditionBlock struct {
	Condition string
	Block     Node
}

// LastIsFallback, passed as the fallback of NewIfChain, makes the final
// pair's block serve as the unconditional default: it is excluded from the
// conditional chain and its condition is discarded.
var LastIsFallback Node = lastIsFallback{}

type lastIsFallback struct{}

func (lastIsFallback) Lines() iter.Seq[string] {
	return func(func(string) bool) {}
}

// NewIfChain folds the ordered pairs into a single chain of nested
// conditionals, processing pairs from last to first so that each step
// becomes the alternate body of the one before it. fallback is the
// unconditional default at the end of the chain; pass nil for none, or
// LastIsFallback to use the final pair's block. With no pairs and a nil
// fallback the chain is empty and nil is returned; that is a normal
// outcome, not an error.
func NewIfChain(pairs []ConditionBlock, fallback Node) Node {
	if fallback == LastIsFallback {
		if len(pairs) == 0 {
			panic("codegen: if chain has no pair to take its fallback from")
		}
		fallback = pairs[len(pairs)-1].Block
		pairs = pairs[:len(pairs)-1]
	}
	result := fallback
	for i := len(pairs) - 1; i >= 0; i-- {
		result = NewIf(pairs[i].Condition, pairs[i].Block, result)
	}
	return result
}
