package sema

import "github.com/gulc-lang/gulc/ast"

// Expression nodes in the resolved graph. P7 (resolver/expr.go) produces
// these from ast.Expr; every node here carries its own ExpressionType
// rather than recomputing it, since spec §4.7 requires the value type be
// fixed once and never re-derived by a later pass.

// literal value expressions carry their resolved type directly: the
// builtin the literal's suffix (or default) picked.

type IntegerLiteral struct {
	AST   *ast.IntegerLiteral
	Type  Type
	Value int64
}

func (*IntegerLiteral) isNode()             {}
func (*IntegerLiteral) isExpression()       {}
func (l *IntegerLiteral) ExpressionType() Type { return l.Type }

type FloatLiteral struct {
	AST   *ast.FloatLiteral
	Type  Type
	Value float64
}

func (*FloatLiteral) isNode()               {}
func (*FloatLiteral) isExpression()         {}
func (l *FloatLiteral) ExpressionType() Type { return l.Type }

type CharLiteral struct {
	AST   *ast.CharLiteral
	Type  Type
	Value rune
}

func (*CharLiteral) isNode()               {}
func (*CharLiteral) isExpression()         {}
func (l *CharLiteral) ExpressionType() Type { return l.Type }

type StringLiteral struct {
	AST   *ast.StringLiteral
	Type  Type
	Value string
}

func (*StringLiteral) isNode()               {}
func (*StringLiteral) isExpression()         {}
func (l *StringLiteral) ExpressionType() Type { return l.Type }

type BoolLiteral struct {
	AST   *ast.BoolLiteral
	Type  Type
	Value bool
}

func (*BoolLiteral) isNode()               {}
func (*BoolLiteral) isExpression()         {}
func (l *BoolLiteral) ExpressionType() Type { return l.Type }

// ArrayLiteral is a resolved `[e0, e1, ...]`, ElementType the common type
// every element was converted to.
type ArrayLiteral struct {
	AST         *ast.ArrayLiteral
	ElementType Type
	Elements    []Expression
}

func (*ArrayLiteral) isNode()       {}
func (*ArrayLiteral) isExpression() {}
func (a *ArrayLiteral) ExpressionType() Type {
	return &FlatArray{Element: a.ElementType, Length: &IntegerLiteral{Value: int64(len(a.Elements))}}
}

// LocalVariableRef resolves an identifier to a local (block-scoped)
// Variable.
type LocalVariableRef struct {
	AST *ast.IdentifierExpr
	Var *Variable
}

func (*LocalVariableRef) isNode()       {}
func (*LocalVariableRef) isExpression() {}
func (r *LocalVariableRef) ExpressionType() Type { return r.Var.Type }

// ParameterRef resolves an identifier to an enclosing function's Parameter.
type ParameterRef struct {
	AST   *ast.IdentifierExpr
	Param *Parameter
}

func (*ParameterRef) isNode()       {}
func (*ParameterRef) isExpression() {}
func (r *ParameterRef) ExpressionType() Type { return r.Param.Type }

// VariableRef resolves an identifier to a namespace-scope Variable.
type VariableRef struct {
	AST *ast.IdentifierExpr
	Var *Variable
}

func (*VariableRef) isNode()       {}
func (*VariableRef) isExpression() {}
func (r *VariableRef) ExpressionType() Type { return r.Var.Type }

// MemberVariableRef resolves `target.field` to a struct field. Target
// already carries any implicit dereference/lvalue-to-rvalue conversion it
// needed.
type MemberVariableRef struct {
	AST    ast.Expr
	Target Expression
	Field  *Variable
}

func (*MemberVariableRef) isNode()       {}
func (*MemberVariableRef) isExpression() {}
func (r *MemberVariableRef) ExpressionType() Type { return r.Field.Type }

// MemberPropertyRef resolves `target.prop` to a computed property.
type MemberPropertyRef struct {
	AST      ast.Expr
	Target   Expression
	Property *Property
}

func (*MemberPropertyRef) isNode()       {}
func (*MemberPropertyRef) isExpression() {}
func (r *MemberPropertyRef) ExpressionType() Type { return r.Property.Type }

// PropertyRef resolves a bare (non-member) `prop` reference, e.g. a static
// property accessed unqualified from inside its own struct.
type PropertyRef struct {
	AST      *ast.IdentifierExpr
	Property *Property
}

func (*PropertyRef) isNode()       {}
func (*PropertyRef) isExpression() {}
func (r *PropertyRef) ExpressionType() Type { return r.Property.Type }

// PropertyGetCall is the resolved rewrite of any expression that reads
// through a Property: the property's Get accessor body, invoked with
// Target bound to self (nil Target for a static property).
type PropertyGetCall struct {
	Target   Expression
	Property *Property
}

func (*PropertyGetCall) isNode()       {}
func (*PropertyGetCall) isExpression() {}
func (c *PropertyGetCall) ExpressionType() Type { return c.Property.Type }

// PropertySetCall is the resolved rewrite of an assignment through a
// Property: the property's Set accessor body, invoked with Value bound to
// the accessor's SetValueName.
type PropertySetCall struct {
	Target   Expression
	Property *Property
	Value    Expression
}

func (*PropertySetCall) isNode()       {}
func (*PropertySetCall) isExpression() {}
func (c *PropertySetCall) ExpressionType() Type { return c.Property.Type }

// SubscriptRef names a resolved `operator[]` overload before it is called
// (used only as an intermediate while building a SubscriptCall or a
// subscript-assignment PropertySetCall-style rewrite).
type SubscriptRef struct {
	Target     Expression
	Subscript  *SubscriptOperator
}

func (*SubscriptRef) isNode()       {}
func (*SubscriptRef) isExpression() {}
func (r *SubscriptRef) ExpressionType() Type { return r.Subscript.ValueType }

// SubscriptCall is a resolved `target[args]`.
type SubscriptCall struct {
	AST        *ast.SubscriptCall
	Target     Expression
	Subscript  *SubscriptOperator
	Arguments  []Expression
}

func (*SubscriptCall) isNode()       {}
func (*SubscriptCall) isExpression() {}
func (c *SubscriptCall) ExpressionType() Type { return c.Subscript.ValueType }

// FunctionReference names a resolved Function before it is called (the
// callee of a FunctionCall, or a first-class function value).
type FunctionReference struct {
	AST    ast.Expr
	Target *Function
}

func (*FunctionReference) isNode()       {}
func (*FunctionReference) isExpression() {}
func (r *FunctionReference) ExpressionType() Type {
	params := make([]FunctionPointerParam, len(r.Target.Parameters))
	for i, p := range r.Target.Parameters {
		params[i] = FunctionPointerParam{Label: p.Label, Type: p.Type}
	}
	return &FunctionPointer{Parameters: params, Return: r.Target.ReturnType}
}

// VTableFunctionReference names a virtual method resolved to its v-table
// slot rather than directly, used when the static type of Target does not
// guarantee the dynamic type (spec §4.7's virtual-dispatch lowering).
type VTableFunctionReference struct {
	Target    Expression
	Method    *Function
}

func (*VTableFunctionReference) isNode()       {}
func (*VTableFunctionReference) isExpression() {}
func (r *VTableFunctionReference) ExpressionType() Type {
	return (&FunctionReference{Target: r.Method}).ExpressionType()
}

// CallOperatorReference names a resolved `operator()` overload selected
// for a call-syntax application of a struct value.
type CallOperatorReference struct {
	Target Expression
	Op     *CallOperator
}

func (*CallOperatorReference) isNode()       {}
func (*CallOperatorReference) isExpression() {}
func (r *CallOperatorReference) ExpressionType() Type { return r.Op.ReturnType }

// ConstructorReference names a resolved constructor overload, used as the
// callee of a ConstructorCall.
type ConstructorReference struct {
	Struct *Struct
	Target *Constructor
}

func (*ConstructorReference) isNode()       {}
func (*ConstructorReference) isExpression() {}
func (r *ConstructorReference) ExpressionType() Type { return r.Struct }

// ConstructorCall is a resolved `Struct(args)` construction.
type ConstructorCall struct {
	AST         ast.Expr
	Constructor *Constructor
	Arguments   []Expression
}

func (*ConstructorCall) isNode()       {}
func (*ConstructorCall) isExpression() {}
func (c *ConstructorCall) ExpressionType() Type {
	t, _ := c.Constructor.Owner().(Type)
	return t
}

// DestructorReference names a resolved destructor.
type DestructorReference struct {
	Target *Destructor
}

func (*DestructorReference) isNode()       {}
func (*DestructorReference) isExpression() {}
func (r *DestructorReference) ExpressionType() Type { return &Builtin{Kind: Void} }

// DestructorCall is an implicit end-of-scope or explicit `delete` call,
// inserted by P7 at the end of every scope for each local whose type
// declares a destructor, in reverse declaration order (spec §4.7).
type DestructorCall struct {
	Destructor *Destructor
	Target     Expression
}

func (*DestructorCall) isNode()       {}
func (*DestructorCall) isExpression() {}
func (c *DestructorCall) ExpressionType() Type { return &Builtin{Kind: Void} }

// MemberAccessCall is a resolved `target.member(args)`, Member already
// bound to the overload P7's resolution picked.
type MemberAccessCall struct {
	AST       *ast.MemberAccessCall
	Target    Expression
	Member    *Function
	Arguments []Expression
}

func (*MemberAccessCall) isNode()       {}
func (*MemberAccessCall) isExpression() {}
func (c *MemberAccessCall) ExpressionType() Type { return c.Member.ReturnType }

// FunctionCall is a resolved `target(args)` call to a free function.
type FunctionCall struct {
	AST       *ast.FunctionCall
	Target    *Function
	Arguments []Expression
}

func (*FunctionCall) isNode()       {}
func (*FunctionCall) isExpression() {}
func (c *FunctionCall) ExpressionType() Type { return c.Target.ReturnType }

// InfixOperator is a resolved primitive binary operator application (both
// operands a builtin type the operator is defined for directly, no
// overload involved).
type InfixOperator struct {
	AST  *ast.InfixOperator
	Kind ast.InfixKind
	Type Type
	LHS  Expression
	RHS  Expression
}

func (*InfixOperator) isNode()       {}
func (*InfixOperator) isExpression() {}
func (o *InfixOperator) ExpressionType() Type { return o.Type }

// PrefixOperator is a resolved primitive unary prefix operator, or one of
// the compile-time introspection forms (sizeof/alignof/offsetof/nameof/
// traitsof), all of which fold to a constant at resolve time (spec §4.7).
type PrefixOperator struct {
	AST     *ast.PrefixOperator
	Kind    ast.PrefixKind
	Type    Type
	Operand Expression
}

func (*PrefixOperator) isNode()       {}
func (*PrefixOperator) isExpression() {}
func (o *PrefixOperator) ExpressionType() Type { return o.Type }

// PostfixOperator is a resolved primitive `x++`/`x--`.
type PostfixOperator struct {
	AST     *ast.PostfixOperator
	Kind    ast.PostfixKind
	Type    Type
	Operand Expression
}

func (*PostfixOperator) isNode()       {}
func (*PostfixOperator) isExpression() {}
func (o *PostfixOperator) ExpressionType() Type { return o.Type }

// MemberInfixOperatorCall is the resolved rewrite of an infix operator
// where at least one operand is a struct: a call through the struct's
// `operator +` (etc.) overload instead of a primitive InfixOperator.
type MemberInfixOperatorCall struct {
	AST *ast.InfixOperator
	Op  *Operator
	LHS Expression
	RHS Expression
}

func (*MemberInfixOperatorCall) isNode()       {}
func (*MemberInfixOperatorCall) isExpression() {}
func (c *MemberInfixOperatorCall) ExpressionType() Type { return c.Op.ReturnType }

// MemberPrefixOperatorCall mirrors MemberInfixOperatorCall for a unary
// prefix overload (`operator -`, `operator !`).
type MemberPrefixOperatorCall struct {
	AST     *ast.PrefixOperator
	Op      *Operator
	Operand Expression
}

func (*MemberPrefixOperatorCall) isNode()       {}
func (*MemberPrefixOperatorCall) isExpression() {}
func (c *MemberPrefixOperatorCall) ExpressionType() Type { return c.Op.ReturnType }

// MemberPostfixOperatorCall mirrors MemberInfixOperatorCall for `operator
// ++`/`operator --`.
type MemberPostfixOperatorCall struct {
	AST     *ast.PostfixOperator
	Op      *Operator
	Operand Expression
}

func (*MemberPostfixOperatorCall) isNode()       {}
func (*MemberPostfixOperatorCall) isExpression() {}
func (c *MemberPostfixOperatorCall) ExpressionType() Type { return c.Op.ReturnType }

// AssignmentOperator is a resolved primitive `lhs = rhs` or `lhs op= rhs`.
type AssignmentOperator struct {
	AST *ast.AssignmentOperator
	Op  *ast.InfixKind // nil for plain assignment
	LHS Expression
	RHS Expression
}

func (*AssignmentOperator) isNode()       {}
func (*AssignmentOperator) isExpression() {}
func (a *AssignmentOperator) ExpressionType() Type { return a.LHS.ExpressionType() }

// StructAssignmentOperator is the resolved rewrite of `lhs = rhs` when lhs
// is a struct value: P7 lowers it to a destroy-then-construct pair through
// the struct's copy or move constructor, per GULC's ExprTypeResolver rule
// (spec §4.7's struct-assignment-is-sugar-for-constructor invariant).
type StructAssignmentOperator struct {
	AST         *ast.AssignmentOperator
	Constructor *Constructor // the Copy or Move constructor selected
	LHS         Expression
	RHS         Expression
}

func (*StructAssignmentOperator) isNode()       {}
func (*StructAssignmentOperator) isExpression() {}
func (a *StructAssignmentOperator) ExpressionType() Type { return a.LHS.ExpressionType() }

// ImplicitCast is a compiler-inserted conversion with no surface syntax,
// e.g. an i32 argument widened to i64 to match a parameter type.
type ImplicitCast struct {
	Value Expression
	Type  Type
}

func (*ImplicitCast) isNode()       {}
func (*ImplicitCast) isExpression() {}
func (c *ImplicitCast) ExpressionType() Type { return c.Type }

// ExplicitCast is the resolved form of an `expr as Type`.
type ExplicitCast struct {
	AST   *ast.As
	Value Expression
	Type  Type
}

func (*ExplicitCast) isNode()       {}
func (*ExplicitCast) isExpression() {}
func (c *ExplicitCast) ExpressionType() Type { return c.Type }

// ImplicitDeref inserts a pointer dereference where a value of pointer
// type is used somewhere a referenced value is required.
type ImplicitDeref struct {
	Value Expression
	Type  Type
}

func (*ImplicitDeref) isNode()       {}
func (*ImplicitDeref) isExpression() {}
func (c *ImplicitDeref) ExpressionType() Type { return c.Type }

// LValueToRValue marks the point an lvalue expression (something with a
// storage location) is read as a plain value, the same conversion C and
// C++ semantic analyses insert; P7 needs it explicit so the mangler and a
// future code generator can tell "the address of x" from "the value of x"
// without re-deriving it.
type LValueToRValue struct {
	Value Expression
	Type  Type
}

func (*LValueToRValue) isNode()       {}
func (*LValueToRValue) isExpression() {}
func (c *LValueToRValue) ExpressionType() Type { return c.Type }

// RValueToInRef binds a temporary rvalue to an implicit `in`-reference
// parameter, inserted when a by-value argument expression is passed to a
// parameter whose type is an (unannotated) reference.
type RValueToInRef struct {
	Value Expression
	Type  Type
}

func (*RValueToInRef) isNode()       {}
func (*RValueToInRef) isExpression() {}
func (c *RValueToInRef) ExpressionType() Type { return c.Type }

// Ref is the resolved form of an explicit `ref expr`.
type Ref struct {
	AST   *ast.Ref
	Value Expression
	Type  Type
}

func (*Ref) isNode()       {}
func (*Ref) isExpression() {}
func (r *Ref) ExpressionType() Type { return r.Type }

// Ternary is a resolved `cond ? then : else`.
type Ternary struct {
	AST       *ast.Ternary
	Condition Expression
	Then      Expression
	Else      Expression
	Type      Type
}

func (*Ternary) isNode()       {}
func (*Ternary) isExpression() {}
func (t *Ternary) ExpressionType() Type { return t.Type }

// Try is a resolved `try expr`; its value type is Value's.
type Try struct {
	AST   *ast.Try
	Value Expression
}

func (*Try) isNode()       {}
func (*Try) isExpression() {}
func (t *Try) ExpressionType() Type { return t.Value.ExpressionType() }

// Is is a resolved `expr is Type` dynamic-type test, always bool.
type Is struct {
	AST    *ast.Is
	Value  Expression
	Target Type
}

func (*Is) isNode()       {}
func (*Is) isExpression() {}
func (i *Is) ExpressionType() Type { return &Builtin{Kind: Bool} }

// Has is a resolved `expr has Trait` conformance test, always bool.
type Has struct {
	AST   *ast.Has
	Value Expression
	Trait Type
}

func (*Has) isNode()       {}
func (*Has) isExpression() {}
func (h *Has) ExpressionType() Type { return &Builtin{Kind: Bool} }

// CheckExtendsType is a resolved `Type extends Type` test, always bool;
// unlike Is/Has it is evaluated entirely at resolve time (spec §4.7) since
// both operands are types, not values, so P7 folds it straight to a
// BoolLiteral rather than keeping a live node. The fold happens even when
// an operand is a template parameter; no pass constructs this node.
type CheckExtendsType struct {
	AST     *ast.CheckExtendsType
	Derived Type
	Base    Type
}

func (*CheckExtendsType) isNode()       {}
func (*CheckExtendsType) isExpression() {}
func (c *CheckExtendsType) ExpressionType() Type { return &Builtin{Kind: Bool} }

// EnumConstRef resolves an identifier to an Enum's constant.
type EnumConstRef struct {
	AST    ast.Expr
	Target *EnumConst
}

func (*EnumConstRef) isNode()       {}
func (*EnumConstRef) isExpression() {}
func (r *EnumConstRef) ExpressionType() Type { return r.Target.ExpressionType() }

// CurrentSelf is the resolved `self` keyword.
type CurrentSelf struct {
	AST  *ast.CurrentSelfExpr
	Type Type
}

func (*CurrentSelf) isNode()       {}
func (*CurrentSelf) isExpression() {}
func (s *CurrentSelf) ExpressionType() Type { return s.Type }

// TemplateConstRef resolves an identifier to a `const` template parameter
// visible in the current (possibly not-yet-instantiated) template body.
type TemplateConstRef struct {
	AST       ast.Expr
	Parameter *TemplateParameter
}

func (*TemplateConstRef) isNode()       {}
func (*TemplateConstRef) isExpression() {}
func (r *TemplateConstRef) ExpressionType() Type { return r.Parameter.ConstType }

// SolvedConstExpr wraps any Expression P7 could fully evaluate to a
// compile-time constant (spec §4.7's folding step feeding array sizes,
// enum values, and template const arguments), caching the evaluated value
// alongside the original expression it was folded from.
type SolvedConstExpr struct {
	Original Expression
	Value    int64
}

func (*SolvedConstExpr) isNode()       {}
func (*SolvedConstExpr) isExpression() {}
func (s *SolvedConstExpr) ExpressionType() Type { return s.Original.ExpressionType() }

// StoreTemporaryValue materializes an rvalue into an anonymous storage
// slot so it can be referred to more than once in the lowered tree (e.g.
// the receiver of a MemberAccessCall whose Target is itself a call
// returning a struct by value, evaluated once and reused for the method
// dispatch and later destruction).
type StoreTemporaryValue struct {
	Value Expression
	Slot  int // index into the enclosing scope's temporary table
}

func (*StoreTemporaryValue) isNode()       {}
func (*StoreTemporaryValue) isExpression() {}
func (s *StoreTemporaryValue) ExpressionType() Type { return s.Value.ExpressionType() }

// TemporaryValueRef refers back to a value a StoreTemporaryValue already
// materialized.
type TemporaryValueRef struct {
	Store *StoreTemporaryValue
}

func (*TemporaryValueRef) isNode()       {}
func (*TemporaryValueRef) isExpression() {}
func (r *TemporaryValueRef) ExpressionType() Type { return r.Store.ExpressionType() }

// ConstBinding binds a template const-parameter name directly to the
// Expression supplied as its instantiation argument. During P7,
// drainPendingBodies (resolver/statement.go) adds one of these to the
// scope it resolves an instantiated body in, so a
// reference to the parameter inside the body resolves the same way any
// other named local would, rather than through TemplateConstRef.
type ConstBinding struct {
	Named
	Value Expression
}

func (*ConstBinding) isNode()       {}
func (*ConstBinding) isExpression() {}
func (c *ConstBinding) ExpressionType() Type { return c.Value.ExpressionType() }
