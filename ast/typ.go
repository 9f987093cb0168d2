package ast

// Type nodes as written in source. Only two of these are themselves name
// references awaiting resolution (Unresolved, UnresolvedNested); everything
// else is a syntactic wrapper the parser can build without needing to know
// what a name refers to. P2 (resolver.resolveASTType) replaces the Unresolved*
// variants it finds reachable from a declaration with a pointer into the
// resolved graph (sema.Type) — ast nodes themselves are never mutated by a
// pass; the resolver builds a parallel sema tree instead.

// Qualified wraps a Type with a mut/immut/const qualifier and lvalue flag,
// e.g. `mut i32`, `const Foo`.
type Qualified struct {
	node
	Qualifier Qualifier
	Underlying Type
}

func (*Qualified) isNode() {}
func (*Qualified) isType() {}

// BuiltinRef names one of the built-in scalar types by keyword
// (void, i8..i64, u8..u64, f16/f32/f64, char, bool).
type BuiltinRef struct {
	node
	Name string
}

func (*BuiltinRef) isNode() {}
func (*BuiltinRef) isType() {}

// PointerRef is `Type*`.
type PointerRef struct {
	node
	To Type
}

func (*PointerRef) isNode() {}
func (*PointerRef) isType() {}

// ReferenceRef is `Type&`.
type ReferenceRef struct {
	node
	To Type
}

func (*ReferenceRef) isNode() {}
func (*ReferenceRef) isType() {}

// RValueReferenceRef is `Type&&`.
type RValueReferenceRef struct {
	node
	To Type
}

func (*RValueReferenceRef) isNode() {}
func (*RValueReferenceRef) isType() {}

// FunctionPointerParam is one labeled parameter type in a FunctionPointerRef.
type FunctionPointerParam struct {
	node
	Label *Identifier // may be nil
	Type  Type
}

// FunctionPointerRef is `(label: Type, ...) -> Type`.
type FunctionPointerRef struct {
	node
	Parameters []*FunctionPointerParam
	Return     Type
}

func (*FunctionPointerRef) isNode() {}
func (*FunctionPointerRef) isType() {}

// DimensionRef is a multi-dimensional array shape, `Type[d0][d1]...`, each
// dimension either a constant expression or unbounded (nil Size).
type DimensionRef struct {
	node
	Element Type
	Sizes   []Expr
}

func (*DimensionRef) isNode() {}
func (*DimensionRef) isType() {}

// FlatArrayRef is a single fixed-length array `Type[N]` kept distinct from
// DimensionRef per spec §3 (a FlatArray is always single-dimension, used for
// storage layout rather than multi-D indexing sugar).
type FlatArrayRef struct {
	node
	Element Type
	Length  Expr
}

func (*FlatArrayRef) isNode() {}
func (*FlatArrayRef) isType() {}

// TemplateArg is one argument in a `Name<arg, arg>` type reference. Exactly
// one of Type or Const is set: a typename argument or a compile-time
// constant-expression argument.
type TemplateArg struct {
	node
	Type  Type
	Const Expr
}

// Unresolved is a plain (possibly template-argumented) name reference that
// has not yet been looked up: `a.b.C<Arg>`.
type Unresolved struct {
	node
	Namespace *NamespacePath // may be nil (unqualified reference)
	Name      *Identifier
	Arguments []*TemplateArg // empty when Name carries no template arguments
}

func (*Unresolved) isNode() {}
func (*Unresolved) isType() {}

// UnresolvedNested is `Container.Name<Args>`, a nested name reference whose
// container must itself resolve before Name can be looked up against it
// (e.g. `Box<T>.Iterator`).
type UnresolvedNested struct {
	node
	Container Type
	Name      *Identifier
	Arguments []*TemplateArg
}

func (*UnresolvedNested) isNode() {}
func (*UnresolvedNested) isType() {}

// SelfRef is the `Self` type keyword, rewritten by P2 to the concrete
// enclosing struct/trait/enum (spec §4.2).
type SelfRef struct {
	node
}

func (*SelfRef) isNode() {}
func (*SelfRef) isType() {}

// ImaginaryRef is the `imaginary` modifier applied to a floating type.
type ImaginaryRef struct {
	node
	Of Type
}

func (*ImaginaryRef) isNode() {}
func (*ImaginaryRef) isType() {}

// VTableRef requests the v-table pointer type of Of (used internally by
// virtual-dispatch lowering; always treated as const per spec §3 invariant).
type VTableRef struct {
	node
	Of Type
}

func (*VTableRef) isNode() {}
func (*VTableRef) isType() {}

// LabeledRef carries an argument label alongside a type, used in function
// parameter lists where the label is part of the type for overload
// matching purposes (spec §4.7, "labels are part of the signature").
type LabeledRef struct {
	node
	Label *Identifier
	Underlying Type
}

func (*LabeledRef) isNode() {}
func (*LabeledRef) isType() {}
