package sema

import "github.com/gulc-lang/gulc/ast"

// declCommon is embedded by every declaration node, carrying the fields
// spec §3 says every Declaration variant owns: a container back-pointer
// (filled in exactly once, at Add time, by sema.Add), the originating ast
// node, visibility, and the mangled name P8 fills in last.
type declCommon struct {
	owned
	AST         ast.Decl
	Visibility  ast.Visibility
	Modifiers   ast.Modifiers
	MangledName string // empty until P8 runs
}

func (d *declCommon) ASTNode() ast.Node { return d.AST }

// Container returns the Owner this declaration was added to, the spec §3
// "container" field under its Go name (Owner is already taken by the
// ownership-model method).
func (d *declCommon) Container() Owner { return d.Owner() }

// Namespace is a resolved `namespace a.b {...}`; P1 merges every fragment
// sharing a dotted path into a single Namespace (spec §4.1).
type Namespace struct {
	owned
	members
	Named
	AST *ast.Namespace
}

func (*Namespace) isNode()             {}
func (n *Namespace) ASTNode() ast.Node { return n.AST }

// Unit is the root of a resolved compilation: the top-level (unnamed)
// namespace plus every file that contributed to it.
type Unit struct {
	Root  *Namespace
	Files []*ast.File
}

// Struct is a resolved `struct` declaration. TemplateParameters is empty
// for a plain (non-template) struct.
type Struct struct {
	declCommon
	members
	Named
	TemplateParameters []*TemplateParameter
	Base               Type   // nil if no base struct
	Traits             []Type // implemented traits
	Fields             []*Variable
	Constructors       []*Constructor
	Destructor         *Destructor
	Methods            []*Function
	Operators          []*Operator
	CastOperators      []*CastOperator
	CallOperators      []*CallOperator
	SubscriptOperators []*SubscriptOperator
	Properties         []*Property
	baseWasResolved    bool // P4 re-entry guard, set once Base/Traits are filled
}

func (*Struct) isNode() {}
func (*Struct) isType() {}

func (s *Struct) TemplateParams() []*TemplateParameter { return s.TemplateParameters }

// BaseWasResolved/SetBaseWasResolved expose the P4 re-entry guard to the
// resolver package without making baseWasResolved itself part of the
// public field surface.
func (s *Struct) BaseWasResolved() bool { return s.baseWasResolved }
func (s *Struct) SetBaseWasResolved()   { s.baseWasResolved = true }

// TemplateStructInst is a concrete struct produced by instantiating a
// template Struct with a specific argument list (P6). Original points back
// at the template it was copied from (spec §3's "originalDecl").
type TemplateStructInst struct {
	declCommon
	members
	Named
	Original  *Struct
	Arguments []TemplateArgument
	Base      Type
	Traits    []Type
	Fields    []*Variable
	Methods   []*Function
}

func (*TemplateStructInst) isNode() {}
func (*TemplateStructInst) isType() {}

// TemplateArgument is one resolved argument of a template instantiation:
// exactly one of Type or Const is set.
type TemplateArgument struct {
	Type  Type
	Const Expression
}

// Trait is a resolved `trait` declaration.
type Trait struct {
	declCommon
	members
	Named
	TemplateParameters []*TemplateParameter
	Inherits           []Type
	Methods            []*Function
	Properties         []*Property
}

func (*Trait) isNode() {}
func (*Trait) isType() {}

func (t *Trait) TemplateParams() []*TemplateParameter { return t.TemplateParameters }

// TemplateTraitInst mirrors TemplateStructInst for trait templates.
type TemplateTraitInst struct {
	declCommon
	members
	Named
	Original  *Trait
	Arguments []TemplateArgument
	Inherits  []Type
	Methods   []*Function
}

func (*TemplateTraitInst) isNode() {}
func (*TemplateTraitInst) isType() {}

// EnumConst is one resolved entry of an Enum.
type EnumConst struct {
	owned
	noMembers
	Named
	AST   *ast.EnumConst
	Value int64
}

func (*EnumConst) isNode()       {}
func (*EnumConst) isExpression() {}
func (e *EnumConst) ExpressionType() Type {
	t, _ := e.Owner().(Type)
	return t
}

// Enum is a resolved `enum` declaration.
type Enum struct {
	declCommon
	members
	Named
	Underlying Type // defaults to the i32 Builtin if not written
	Constants  []*EnumConst
}

func (*Enum) isNode() {}
func (*Enum) isType() {}

// Parameter is one resolved function/constructor/subscript parameter.
type Parameter struct {
	owned
	noMembers
	Named
	AST     *ast.Parameter
	Label   string // "" when unlabeled
	Type    Type
	Default Expression
}

func (*Parameter) isNode()       {}
func (*Parameter) isExpression() {}
func (p *Parameter) ExpressionType() Type { return p.Type }

// Function is a resolved `func` declaration.
type Function struct {
	declCommon
	noMembers
	Named
	TemplateParameters []*TemplateParameter
	Parameters         []*Parameter
	ReturnType         Type // Void builtin when omitted in source
	Contracts          []Contract
	Body               *Compound // nil for a prototype/extern declaration
}

func (*Function) isNode() {}

func (f *Function) TemplateParams() []*TemplateParameter { return f.TemplateParameters }

// Signature is the part of a Function's identity that participates in
// overload resolution: labels and parameter types, per spec §4.7 ("labels
// are part of the signature").
func (f *Function) Signature() []Labeled {
	out := make([]Labeled, len(f.Parameters))
	for i, p := range f.Parameters {
		out[i] = Labeled{Label: p.Label, Underlying: p.Type}
	}
	return out
}

// TemplateFunctionInst mirrors TemplateStructInst for function templates.
type TemplateFunctionInst struct {
	declCommon
	noMembers
	Named
	Original   *Function
	Arguments  []TemplateArgument
	Parameters []*Parameter
	ReturnType Type
	Body       *Compound
}

func (*TemplateFunctionInst) isNode() {}

// ConstructorKind mirrors ast.ConstructorKind at the resolved-graph level.
type ConstructorKind int

const (
	ConstructorNormal ConstructorKind = iota
	ConstructorCopy
	ConstructorMove
)

// Constructor is a resolved struct constructor.
type Constructor struct {
	declCommon
	noMembers
	Kind       ConstructorKind
	Parameters []*Parameter
	Contracts  []Contract
	Body       *Compound
}

func (*Constructor) isNode() {}
func (c *Constructor) Name() string { return "<constructor>" }

// Destructor is a resolved struct destructor.
type Destructor struct {
	declCommon
	noMembers
	Body *Compound
}

func (*Destructor) isNode() {}
func (d *Destructor) Name() string { return "<destructor>" }

// OperatorKind mirrors ast.OperatorKind at the resolved-graph level.
type OperatorKind = ast.OperatorKind

// Operator is a resolved operator-overload declaration.
type Operator struct {
	declCommon
	noMembers
	Kind       OperatorKind
	Parameters []*Parameter
	ReturnType Type
	Contracts  []Contract
	Body       *Compound
}

func (*Operator) isNode() {}
func (o *Operator) Name() string { return "operator" }

// CastOperator is a resolved `operator as -> Type` conversion.
type CastOperator struct {
	declCommon
	noMembers
	TargetType Type
	Explicit   bool
	Body       *Compound
}

func (*CastOperator) isNode() {}
func (c *CastOperator) Name() string { return "operator as" }

// CallOperator is a resolved `operator()` declaration.
type CallOperator struct {
	declCommon
	noMembers
	Parameters []*Parameter
	ReturnType Type
	Contracts  []Contract
	Body       *Compound
}

func (*CallOperator) isNode() {}
func (c *CallOperator) Name() string { return "operator()" }

// SubscriptOperator is a resolved `operator[]` declaration.
type SubscriptOperator struct {
	declCommon
	noMembers
	Parameters   []*Parameter
	ValueType    Type
	Get          *Compound
	Set          *Compound
	SetValueName string
}

func (*SubscriptOperator) isNode() {}
func (s *SubscriptOperator) Name() string { return "operator[]" }

// Property is a resolved `prop` declaration.
type Property struct {
	declCommon
	noMembers
	Named
	Type         Type
	Get          *Compound
	Set          *Compound
	SetValueName string
}

func (*Property) isNode() {}

// Extension is a resolved `extension` declaration: members added to an
// already-declared type without becoming that type's owner.
type Extension struct {
	declCommon
	members
	Named
	ExtendedType Type
	Inherits     []Type
	Methods      []*Function
	Properties   []*Property
}

func (*Extension) isNode() {}

// Variable is a resolved `let`/`var` declaration: a file-, namespace-, or
// member-scope binding.
type Variable struct {
	declCommon
	noMembers
	Named
	Type  Type
	Value Expression // nil if uninitialized
}

func (*Variable) isNode()       {}
func (*Variable) isExpression() {}
func (v *Variable) ExpressionType() Type { return v.Type }

// TypeSuffix is a resolved `suffix _mm = Type` literal-suffix declaration.
type TypeSuffix struct {
	declCommon
	noMembers
	Suffix string
	Type   Type
}

func (*TypeSuffix) isNode()       {}
func (t *TypeSuffix) Name() string { return "suffix " + t.Suffix }
