package ast

// File is the parsed-tree root for one source file: a flat list of
// top-level declarations plus the file's own import list, consulted at
// lookup order step 4 (spec §4.2). Producing one of these from source text
// is the parser collaborator's job (spec §1, §6); resolver.Resolve takes a
// slice of *File as its input.
type File struct {
	node
	Path         string
	Imports      []*Import
	Declarations []Decl
}

// Import is an `import a.b.c` declaration.
type Import struct {
	node
	Attributes Attributes
	Path       *NamespacePath
}

func (*Import) isNode() {}
func (*Import) isDecl() {}

// Namespace is a `namespace a.b { ... }` declaration; P1 merges every
// namespace fragment sharing a dotted path into one prototype (spec §4.1).
type Namespace struct {
	node
	Attributes   Attributes
	Path         *NamespacePath
	Declarations []Decl
}

func (*Namespace) isNode() {}
func (*Namespace) isDecl() {}

// declCommon is embedded by every Decl to carry the fields common to all
// declarations per spec §3 (visibility, attributes, modifiers, name).
type declCommon struct {
	node
	Visibility Visibility
	Attributes Attributes
	Modifiers  Modifiers
	Name       *Identifier
}

// TemplateParameter is a single `<T>` (Typename) or `<const N: i32>` (Const)
// template parameter slot.
type TemplateParameter struct {
	node
	IsConst bool
	Name    *Identifier
	// ConstType is set only when IsConst; the declared type of the constant.
	ConstType Type
	// Default is the optional default argument (type or const expression).
	DefaultType  Type
	DefaultConst Expr
}

func (*TemplateParameter) isNode() {}
func (*TemplateParameter) isDecl() {}

// Struct is a `struct Name<T>: Base, trait... { members }` declaration.
// A nil TemplateParameters slice means this is a plain (non-template)
// struct; spec §3 splits Struct vs TemplateStruct, but since AST-level
// struct syntax is identical modulo the parameter list, one node type
// carries both and resolver.base picks the Decl variant to build.
type Struct struct {
	declCommon
	TemplateParameters []*TemplateParameter
	Inherits           []Type // base struct and/or implemented traits
	Contracts          Contracts
	Members            []Decl
}

func (*Struct) isNode() {}
func (*Struct) isDecl() {}

// Trait is a `trait Name<T>: Base... { members }` declaration.
type Trait struct {
	declCommon
	TemplateParameters []*TemplateParameter
	Inherits           []Type
	Contracts          Contracts
	Members            []Decl
}

func (*Trait) isNode() {}
func (*Trait) isDecl() {}

// EnumConst is a single `Name = value` entry of an Enum.
type EnumConst struct {
	declCommon
	Value Expr // may be nil (auto-incremented from the previous entry)
}

func (*EnumConst) isNode() {}
func (*EnumConst) isDecl() {}

// Enum is an `enum Name: underlying { entries }` declaration.
type Enum struct {
	declCommon
	UnderlyingType Type // may be nil (defaults to i32)
	Constants      []*EnumConst
}

func (*Enum) isNode() {}
func (*Enum) isDecl() {}

// Parameter is one function/constructor/subscript parameter.
type Parameter struct {
	node
	Attributes Attributes
	Label      *Identifier // may be nil (positional, unlabeled)
	Name       *Identifier
	Type       Type
	Default    Expr // may be nil
}

func (*Parameter) isNode() {}
func (*Parameter) isDecl() {}

// Function is a `func name<T>(params) -> ret contracts { body }`
// declaration. TemplateParameters nil means a plain function.
type Function struct {
	declCommon
	TemplateParameters []*TemplateParameter
	Parameters         []*Parameter
	ReturnType         Type // may be nil (void)
	Contracts          Contracts
	Body               *Compound // nil for a prototype/extern declaration
}

func (*Function) isNode() {}
func (*Function) isDecl() {}

// ConstructorKind distinguishes the three constructor forms spec §3 names.
type ConstructorKind int

const (
	ConstructorNormal ConstructorKind = iota
	ConstructorCopy
	ConstructorMove
)

// Constructor is a struct constructor declaration.
type Constructor struct {
	declCommon
	Kind       ConstructorKind
	Parameters []*Parameter
	Contracts  Contracts
	Body       *Compound
}

func (*Constructor) isNode() {}
func (*Constructor) isDecl() {}

// Destructor is a struct destructor declaration.
type Destructor struct {
	declCommon
	Body *Compound
}

func (*Destructor) isNode() {}
func (*Destructor) isDecl() {}

// OperatorKind is the operator symbol an Operator declaration overloads.
type OperatorKind int

const (
	OpAdd OperatorKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpInc
	OpDec
	OpNeg
	OpNot
	OpBitNot
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpAssign
	OpPow
	OpEq
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
	OpSpaceship
)

// Operator is an `operator +(params) -> ret { body }` declaration.
type Operator struct {
	declCommon
	Kind       OperatorKind
	Parameters []*Parameter
	ReturnType Type
	Contracts  Contracts
	Body       *Compound
}

func (*Operator) isNode() {}
func (*Operator) isDecl() {}

// CastOperator is an `operator as -> Type { body }` conversion operator.
type CastOperator struct {
	declCommon
	TargetType Type
	Explicit   bool
	Body       *Compound
}

func (*CastOperator) isNode() {}
func (*CastOperator) isDecl() {}

// CallOperator is an `operator()(params) -> ret { body }` declaration.
type CallOperator struct {
	declCommon
	Parameters []*Parameter
	ReturnType Type
	Contracts  Contracts
	Body       *Compound
}

func (*CallOperator) isNode() {}
func (*CallOperator) isDecl() {}

// SubscriptOperator is an `operator[](params) -> ret { get {...} set {...} }`
// declaration; Get and/or Set carry the accessor bodies.
type SubscriptOperator struct {
	declCommon
	Parameters []*Parameter
	ValueType  Type
	Get        *Compound // nil if no getter
	Set        *Compound // nil if no setter
	SetValueName *Identifier // name bound to the assigned value inside Set
}

func (*SubscriptOperator) isNode() {}
func (*SubscriptOperator) isDecl() {}

// Property is a `prop name: Type { get {...} set {...} }` declaration.
type Property struct {
	declCommon
	Type         Type
	Get          *Compound
	Set          *Compound
	SetValueName *Identifier
}

func (*Property) isNode() {}
func (*Property) isDecl() {}

// Extension is an `extension Name: Trait { members }` declaration, adding
// members or trait conformance to an already-declared type.
type Extension struct {
	declCommon
	ExtendedType Type
	Inherits     []Type
	Members      []Decl
}

func (*Extension) isNode() {}
func (*Extension) isDecl() {}

// TypeAlias is a `type Name = Underlying` declaration.
type TypeAlias struct {
	declCommon
	TemplateParameters []*TemplateParameter
	Underlying         Type
}

func (*TypeAlias) isNode() {}
func (*TypeAlias) isDecl() {}

// TypeSuffix is a `suffix _mm = Type` literal-suffix declaration, e.g.
// letting `5_mm` construct a `Millimeters` value.
type TypeSuffix struct {
	declCommon
	Suffix string
	Type   Type
}

func (*TypeSuffix) isNode() {}
func (*TypeSuffix) isDecl() {}

// Variable is a `let`/`var` declaration, at file, namespace, or member scope.
type Variable struct {
	declCommon
	Type  Type // may be nil (inferred from Value)
	Value Expr // may be nil
}

func (*Variable) isNode() {}
func (*Variable) isDecl() {}
