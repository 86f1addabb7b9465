package codegen

import (
	"iter"
	"slices"
	"strings"
)

// Statement emits one verbatim statement line.
type Statement struct {
	text string
}

func NewStatement(text string) *Statement {
	return &Statement{text: text}
}

func (s *Statement) Lines() iter.Seq[string] { return oneLine(s.text) }

// Assign emits "lvalue = rvalue".
type Assign struct {
	lvalue string
	rvalue string
}

func NewAssign(lvalue, rvalue string) *Assign {
	return &Assign{lvalue: lvalue, rvalue: rvalue}
}

func (a *Assign) Lines() iter.Seq[string] {
	return oneLine(a.lvalue + " = " + a.rvalue)
}

// Line emits one raw line, which may be empty. Blank lines are the usual
// separator between top-level definitions.
type Line struct {
	text string
}

func NewLine(text string) *Line {
	return &Line{text: text}
}

// BlankLine returns an empty Line.
func BlankLine() *Line { return &Line{} }

func (l *Line) Lines() iter.Seq[string] { return oneLine(l.text) }

// Return emits "return expr".
type Return struct {
	expr string
}

func NewReturn(expr string) *Return {
	return &Return{expr: expr}
}

func (r *Return) Lines() iter.Seq[string] { return oneLine("return " + r.expr) }

// Raise emits "raise expr".
type Raise struct {
	expr string
}

func NewRaise(expr string) *Raise {
	return &Raise{expr: expr}
}

func (r *Raise) Lines() iter.Seq[string] { return oneLine("raise " + r.expr) }

// Assert emits "assert expr".
type Assert struct {
	expr string
}

func NewAssert(expr string) *Assert {
	return &Assert{expr: expr}
}

func (a *Assert) Lines() iter.Seq[string] { return oneLine("assert " + a.expr) }

// Yield emits "yield expr".
type Yield struct {
	expr string
}

func NewYield(expr string) *Yield {
	return &Yield{expr: expr}
}

func (y *Yield) Lines() iter.Seq[string] { return oneLine("yield " + y.expr) }

// Pass emits the no-op placeholder statement. It fills otherwise-empty
// blocks.
type Pass struct{}

func (Pass) Lines() iter.Seq[string] { return oneLine("pass") }

// Comment emits its text behind a comment marker.
type Comment struct {
	text string
}

func NewComment(text string) *Comment {
	return &Comment{text: text}
}

func (c *Comment) Lines() iter.Seq[string] { return oneLine("# " + c.text) }

// Import emits a bare module import.
type Import struct {
	module string
}

func NewImport(module string) *Import {
	return &Import{module: module}
}

func (i *Import) Lines() iter.Seq[string] { return oneLine("import " + i.module) }

// ImportAs emits an aliased module import.
type ImportAs struct {
	module string
	alias  string
}

func NewImportAs(module, alias string) *ImportAs {
	return &ImportAs{module: module, alias: alias}
}

func (i *ImportAs) Lines() iter.Seq[string] {
	return oneLine("import " + i.module + " as " + i.alias)
}

// FromImport emits a selective import of the given names from a module.
type FromImport struct {
	module string
	names  []string
}

func NewFromImport(module string, names []string) *FromImport {
	return &FromImport{module: module, names: slices.Clone(names)}
}

func (i *FromImport) Lines() iter.Seq[string] {
	return oneLine("from " + i.module + " import " + strings.Join(i.names, ", "))
}
