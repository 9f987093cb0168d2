// Package ast holds the set of types used in the parsed tree representation
// of the language: the input a resolver.Resolve pipeline consumes. Producing
// this tree (lexing and parsing source text) is a collaborator outside this
// package (spec §1, §6) — ast only defines the shape parser output must take.
package ast

import "reflect"

// Position is a single point in a source file, 1-based like most editors.
type Position struct {
	Line   int
	Column int
}

// Range is the source range a node spans, used to build diagnostics.
type Range struct {
	Start Position
	End   Position
}

// node is embedded by every concrete AST node to carry its source range.
type node struct {
	Range Range
	File  string
}

// Pos returns the source range of the node.
func (n node) Pos() Range { return n.Range }

// Node is implemented by every node in the tree. Six of the seven top-level
// kinds (Attribute, Contract, Declaration, Expression, Statement, Type) are
// modeled as Go interfaces embedding Node; a concrete node satisfies one of
// them via its isAttr/isCont/isDecl/isExpr/isStmt/isType marker method. The
// seventh kind, Identifier, is the single concrete *Identifier type and has
// no marker method beyond isNode (DESIGN NOTES §9 — tagged unions
// dispatched by a kind marker instead of a class hierarchy with RTTI).
type Node interface {
	Pos() Range
	isNode()
}

func (node) isNode() {}

// Attr is any attribute node (the `@name(args)` annotation construct).
type Attr interface {
	Node
	isAttr()
}

// Cont is any contract clause (requires/ensures/throws/where).
type Cont interface {
	Node
	isCont()
}

// Decl is any declaration node.
type Decl interface {
	Node
	isDecl()
}

// Expr is any expression node.
type Expr interface {
	Node
	isExpr()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	isStmt()
}

// Type is any type-reference node.
type Type interface {
	Node
	isType()
}

// Qualifier is the mutability qualifier carried by every Type.
type Qualifier int

const (
	QualUnassigned Qualifier = iota
	QualMut
	QualImmut
	QualConst
)

// Visibility is the access-control level carried by a Decl.
type Visibility int

const (
	VisUnassigned Visibility = iota
	VisPublic
	VisPrivate
	VisProtected
	VisInternal
	VisProtectedInternal
)

// Modifiers is the bitset of declaration modifiers named in spec §3.
type Modifiers uint16

const (
	ModStatic Modifiers = 1 << iota
	ModMut
	ModVolatile
	ModAbstract
	ModVirtual
	ModOverride
	ModExtern
	ModPrototype
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// StampFile records which source file n came from, by reflecting down to
// the embedded node struct's File field. Called once per node while
// resolver's P1 prototyper walks a freshly parsed *File (prototype.go), so
// any diagnostic raised against n later can report its origin even after
// the node has been folded into a merged sema tree with no file of its
// own. Uses the same reflection fallback resolver.astOf relies on, since
// neither Node's interface nor its many concrete types expose a setter.
func StampFile(n Node, file string) {
	v := fieldValue(n)
	if !v.IsValid() {
		return
	}
	f := v.FieldByName("File")
	if f.IsValid() && f.CanSet() && f.Kind() == reflect.String {
		f.SetString(file)
	}
}

// FileOf returns the source file n was stamped with by StampFile, or ""
// if n is nil or was never stamped (e.g. a node built directly by a test
// rather than produced by resolver.Resolve).
func FileOf(n Node) string {
	v := fieldValue(n)
	if !v.IsValid() {
		return ""
	}
	f := v.FieldByName("File")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}

// fieldValue returns the addressable, settable reflect.Value of n's
// underlying struct, or a zero Value if n is nil or not a struct pointer.
func fieldValue(n Node) reflect.Value {
	if n == nil {
		return reflect.Value{}
	}
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}
	}
	return v.Elem()
}
