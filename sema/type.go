package sema

import "github.com/gulc-lang/gulc/ast"

// Type is any node that can stand in type position in the resolved graph.
// Every Type is also an Owner, since members (fields, methods, nested
// types) are looked up through the same Symbols machinery as namespace
// members (spec §3's uniform name-lookup invariant).
type Type interface {
	isType()
	Owner
}

// Expression is implemented by every resolved expression node; every one
// of them has a fixed value type by the time P7 finishes (spec §4.7's
// central invariant: "every resolved expression has a non-nil value
// type").
type Expression interface {
	isExpression()
	Node
	ExpressionType() Type
}

// Builtin is one of the built-in scalar types (void, i8..i64, u8..u64,
// f16/f32/f64, char, bool). A builtin name looked up through scope resolves
// to the one Builtin the resolver registers for it, but literals, operator
// results and the ExpressionType methods in this package build their own
// Builtin values, so two Builtins of the same Kind need not be the same
// pointer.
type Builtin struct {
	noMembers
	Named
	Kind BuiltinKind
}

func (*Builtin) isNode() {}
func (*Builtin) isType() {}

// BuiltinKind enumerates the built-in scalar kinds.
type BuiltinKind int

const (
	Void BuiltinKind = iota
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F16
	F32
	F64
	Char
	Bool
)

// Pointer is `Type*`.
type Pointer struct {
	noMembers
	AST *ast.PointerRef
	To  Type
}

func (*Pointer) isNode() {}
func (*Pointer) isType() {}
func (p *Pointer) Name() string { return p.To.Name() + "*" }
func (p *Pointer) ASTNode() ast.Node { return p.AST }

// Reference is `Type&`.
type Reference struct {
	noMembers
	AST *ast.ReferenceRef
	To  Type
}

func (*Reference) isNode() {}
func (*Reference) isType() {}
func (r *Reference) Name() string { return r.To.Name() + "&" }
func (r *Reference) ASTNode() ast.Node { return r.AST }

// RValueReference is `Type&&`.
type RValueReference struct {
	noMembers
	AST *ast.RValueReferenceRef
	To  Type
}

func (*RValueReference) isNode() {}
func (*RValueReference) isType() {}
func (r *RValueReference) Name() string { return r.To.Name() + "&&" }
func (r *RValueReference) ASTNode() ast.Node { return r.AST }

// FunctionPointerParam is one labeled parameter slot of a FunctionPointer.
type FunctionPointerParam struct {
	Label string // "" when unlabeled
	Type  Type
}

// FunctionPointer is `(label: Type, ...) -> Type`.
type FunctionPointer struct {
	noMembers
	AST        *ast.FunctionPointerRef
	Parameters []FunctionPointerParam
	Return     Type
}

func (*FunctionPointer) isNode() {}
func (*FunctionPointer) isType() {}
func (f *FunctionPointer) Name() string          { return "<function pointer>" }
func (f *FunctionPointer) ASTNode() ast.Node      { return f.AST }

// Dimension is a multi-dimensional array type, `Type[d0][d1]...`.
type Dimension struct {
	noMembers
	AST     *ast.DimensionRef
	Element Type
	Sizes   []Expression // nil entry means an unbounded dimension
}

func (*Dimension) isNode() {}
func (*Dimension) isType() {}
func (d *Dimension) Name() string { return d.Element.Name() + "[]" }
func (d *Dimension) ASTNode() ast.Node { return d.AST }

// FlatArray is a single fixed-length array `Type[N]`.
type FlatArray struct {
	noMembers
	AST     *ast.FlatArrayRef
	Element Type
	Length  Expression
}

func (*FlatArray) isNode() {}
func (*FlatArray) isType() {}
func (a *FlatArray) Name() string { return a.Element.Name() + "[N]" }
func (a *FlatArray) ASTNode() ast.Node { return a.AST }

// Qualified wraps an underlying Type with a mut/immut/const qualifier.
// Member lookups forward to the underlying type; only the qualifier itself
// distinguishes one Qualified from another (spec §3, "a qualifier changes
// how a value may be used, never what members it has").
type Qualified struct {
	AST        *ast.Qualified
	Qualifier  ast.Qualifier
	Underlying Type
}

func (*Qualified) isNode() {}
func (*Qualified) isType() {}
func (q *Qualified) Name() string                 { return q.Underlying.Name() }
func (q *Qualified) ASTNode() ast.Node             { return q.AST }
func (q *Qualified) Member(name string) Owned      { return q.Underlying.Member(name) }
func (q *Qualified) VisitMembers(f func(Owned))    { q.Underlying.VisitMembers(f) }
func (q *Qualified) addMember(Owned)               { panic("sema: cannot add a member through a Qualified") }

// Imaginary is the `imaginary` modifier applied to a floating type.
type Imaginary struct {
	noMembers
	AST *ast.ImaginaryRef
	Of  Type
}

func (*Imaginary) isNode() {}
func (*Imaginary) isType() {}
func (i *Imaginary) Name() string { return "imaginary " + i.Of.Name() }
func (i *Imaginary) ASTNode() ast.Node { return i.AST }

// VTable is the v-table pointer type of Of; always treated as const
// (spec §3 invariant).
type VTable struct {
	noMembers
	Of Type
}

func (*VTable) isNode() {}
func (*VTable) isType() {}
func (v *VTable) Name() string { return v.Of.Name() + ".vtable" }

// Labeled carries an argument label alongside a type for parameter-list
// overload matching, where labels are part of the signature (spec §4.7).
type Labeled struct {
	noMembers
	AST        *ast.LabeledRef
	Label      string
	Underlying Type
}

func (*Labeled) isNode() {}
func (*Labeled) isType() {}
func (l *Labeled) Name() string { return l.Label + ": " + l.Underlying.Name() }
func (l *Labeled) ASTNode() ast.Node { return l.AST }

// Alias is a `type Name = Underlying` declaration, resolved to point
// directly at its underlying Type (spec §4.2: aliases are never a
// distinct nominal type, only a spelling).
type Alias struct {
	owned
	noMembers
	Named
	AST        *ast.TypeAlias
	Underlying Type
}

func (*Alias) isNode() {}
func (*Alias) isType() {}
func (a *Alias) ASTNode() ast.Node { return a.AST }

// Self is the `Self` type keyword, resolved by P2 to point at the
// concrete enclosing struct/trait/enum.
type Self struct {
	noMembers
	Resolved Type
}

func (*Self) isNode() {}
func (*Self) isType() {}
func (s *Self) Name() string { return s.Resolved.Name() }

// TemplateTypenameRef is a reference to a template type parameter used
// inside the template's own body, before instantiation substitutes it.
type TemplateTypenameRef struct {
	noMembers
	Named
	Parameter *TemplateParameter
}

func (*TemplateTypenameRef) isNode() {}
func (*TemplateTypenameRef) isType() {}

// Dependent is a `Container.Selector` type expression that could not be
// resolved further because Container had no type member named Selector
// when P2 resolved it (e.g. `T.Iterator` inside a template body, where T
// is a TemplateTypenameRef). P6 re-resolves it against the concrete
// substitution at instantiation time.
type Dependent struct {
	noMembers
	AST       ast.Type
	Container Type // the resolved container, e.g. a TemplateTypenameRef
	Selector  string
}

func (*Dependent) isNode() {}
func (*Dependent) isType() {}
func (d *Dependent) Name() string      { return d.Selector }
func (d *Dependent) ASTNode() ast.Node { return d.AST }

// Nested is a fully-resolved `Container.Name` reference.
type Nested struct {
	noMembers
	Container Type
	Resolved  Type
}

func (*Nested) isNode() {}
func (*Nested) isType() {}
func (n *Nested) Name() string { return n.Container.Name() + "." + n.Resolved.Name() }

// TemplatedType is any Type that owns TemplateParameters and can be
// instantiated; Struct and Trait implement it (Function has a
// TemplateParams method too but is not a Type).
type TemplatedType interface {
	Type
	TemplateParams() []*TemplateParameter
}

// TemplateParameter is a resolved `<T>` or `<const N: Type>` slot.
type TemplateParameter struct {
	owned
	noMembers
	Named
	AST          *ast.TemplateParameter
	IsConst      bool
	ConstType    Type
	DefaultType  Type
	DefaultConst Expression
}

func (*TemplateParameter) isNode() {}
func (t *TemplateParameter) ASTNode() ast.Node { return t.AST }
