package resolver

import (
	"strings"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// resolveExpr is P7's single entry point for every ast.Expr, mirroring
// resolveASTType's role for ast.Type: every other file in this pass calls
// back into it rather than re-implementing a piece of the switch.
func (r *resolver) resolveExpr(e ast.Expr) sema.Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return r.resolveIntegerLiteral(n)
	case *ast.FloatLiteral:
		return r.resolveFloatLiteral(n)
	case *ast.CharLiteral:
		t := r.suffixType(n.Suffix, "char")
		return &sema.CharLiteral{AST: n, Type: t, Value: n.Value}
	case *ast.StringLiteral:
		t := r.suffixType(n.Suffix, "")
		if t == nil {
			t = &sema.Pointer{To: r.get(n, "char").(sema.Type)}
		}
		return &sema.StringLiteral{AST: n, Type: t, Value: n.Value}
	case *ast.BoolLiteral:
		return &sema.BoolLiteral{AST: n, Type: r.get(n, "bool").(sema.Type), Value: n.Value}
	case *ast.ArrayLiteral:
		return r.resolveArrayLiteral(n)
	case *ast.Paren:
		return r.resolveExpr(n.Inner)
	case *ast.InfixOperator:
		return r.resolveInfixOperator(n)
	case *ast.PrefixOperator:
		return r.resolvePrefixOperator(n)
	case *ast.PostfixOperator:
		return r.resolvePostfixOperator(n)
	case *ast.AssignmentOperator:
		return r.resolveAssignment(n)
	case *ast.As:
		return r.resolveAs(n)
	case *ast.Is:
		return &sema.Is{AST: n, Value: r.resolveExpr(n.Value), Target: r.resolveASTType(n.Target)}
	case *ast.Has:
		return &sema.Has{AST: n, Value: r.resolveExpr(n.Value), Trait: r.resolveASTType(n.Trait)}
	case *ast.CheckExtendsType:
		return r.resolveCheckExtendsType(n)
	case *ast.Ternary:
		return r.resolveTernary(n)
	case *ast.Try:
		return &sema.Try{AST: n, Value: r.resolveExpr(n.Value)}
	case *ast.Ref:
		v := r.resolveExpr(n.Value)
		if v == nil {
			return nil
		}
		return &sema.Ref{AST: n, Value: v, Type: &sema.Pointer{To: v.ExpressionType()}}
	case *ast.IdentifierExpr:
		return r.resolveIdentifier(n)
	case *ast.CurrentSelfExpr:
		self := r.scope.selfType()
		if self == nil {
			r.errorf(n, "self used outside a method body")
			return nil
		}
		return &sema.CurrentSelf{AST: n, Type: self}
	case *ast.FunctionCall:
		return r.resolveFunctionCall(n)
	case *ast.MemberAccessCall:
		return r.resolveMemberAccessCall(n)
	case *ast.SubscriptCall:
		return r.resolveSubscriptCall(n)
	case *ast.VariableDeclExpr:
		return r.resolveVariableDeclExpr(n)
	case *ast.LabeledArgument:
		return r.resolveExpr(n.Value)
	case *ast.TypeExpr:
		r.errorf(n, "a type cannot be used standalone as a value")
		return nil
	default:
		r.icef(e, "unhandled ast.Expr kind %T", e)
		return nil
	}
}

func (r *resolver) resolveIntegerLiteral(n *ast.IntegerLiteral) sema.Expression {
	t := r.suffixType(n.Suffix, "i32")
	return &sema.IntegerLiteral{AST: n, Type: t, Value: n.Value}
}

func (r *resolver) resolveFloatLiteral(n *ast.FloatLiteral) sema.Expression {
	t := r.suffixType(n.Suffix, "f64")
	return &sema.FloatLiteral{AST: n, Type: t, Value: n.Value}
}

// suffixType resolves a literal's optional suffix against a TypeSuffix
// declaration (spec §4.7); fallback names the builtin to use when the
// literal carries no suffix at all.
func (r *resolver) suffixType(suffix ast.LiteralSuffix, fallback string) sema.Type {
	if suffix != "" {
		matches := r.find("suffix " + string(suffix))
		if len(matches) == 1 {
			if ts, ok := matches[0].(*sema.TypeSuffix); ok {
				return ts.Type
			}
		}
	}
	if fallback == "" {
		return nil
	}
	t, _ := r.get(nil, fallback).(sema.Type)
	return t
}

func (r *resolver) resolveArrayLiteral(n *ast.ArrayLiteral) sema.Expression {
	elems := make([]sema.Expression, len(n.Elements))
	var elemType sema.Type
	for i, el := range n.Elements {
		re := r.resolveExpr(el)
		elems[i] = re
		if re != nil && elemType == nil {
			elemType = re.ExpressionType()
		}
	}
	for i, re := range elems {
		if re == nil {
			continue
		}
		if converted, _, ok := r.convert(re, elemType); ok {
			elems[i] = converted
		}
	}
	return &sema.ArrayLiteral{AST: n, ElementType: elemType, Elements: elems}
}

// resolveIdentifier rewrites a bare name into the sema-graph reference kind
// matching what it resolved to, implicitly binding a struct member found
// through the enclosing self (spec §4.7's "unqualified member access"
// lookup-order step).
func (r *resolver) resolveIdentifier(n *ast.IdentifierExpr) sema.Expression {
	found := r.get(n, n.Name.Value)
	if found == nil {
		return nil
	}
	switch t := found.(type) {
	case *sema.Parameter:
		return &sema.ParameterRef{AST: n, Param: t}
	case *sema.ConstBinding:
		return t
	case *sema.TemplateParameter:
		return &sema.TemplateConstRef{AST: n, Parameter: t}
	case *sema.EnumConst:
		return &sema.EnumConstRef{AST: n, Target: t}
	case *sema.Variable:
		if _, isStruct := t.Owner().(*sema.Struct); isStruct {
			self := r.currentSelfExpr(n)
			if self == nil {
				return nil
			}
			return &sema.MemberVariableRef{AST: n, Target: self, Field: t}
		}
		if t.Owner() == nil {
			return &sema.LocalVariableRef{AST: n, Var: t}
		}
		return &sema.VariableRef{AST: n, Var: t}
	case *sema.Property:
		if _, isStruct := t.Owner().(*sema.Struct); isStruct {
			self := r.currentSelfExpr(n)
			if self == nil {
				return nil
			}
			return &sema.MemberPropertyRef{AST: n, Target: self, Property: t}
		}
		return &sema.PropertyRef{AST: n, Property: t}
	case *sema.Function:
		return &sema.FunctionReference{AST: n, Target: t}
	default:
		r.errorf(n, "%q does not name a value", n.Name.Value)
		return nil
	}
}

func (r *resolver) currentSelfExpr(at ast.Node) sema.Expression {
	self := r.scope.selfType()
	if self == nil {
		r.errorf(at, "member reference outside a struct body")
		return nil
	}
	return &sema.CurrentSelf{Type: self}
}

func (r *resolver) resolveAssignment(n *ast.AssignmentOperator) sema.Expression {
	lhs := r.resolveExpr(n.LHS)
	rhs := r.resolveExpr(n.RHS)
	if lhs == nil || rhs == nil {
		return nil
	}
	if n.Op == nil && isStructOperand(lhs.ExpressionType()) {
		kind := sema.ConstructorCopy
		if !isLValue(rhs) {
			kind = sema.ConstructorMove
		}
		ctor := r.findConstructor(lhs.ExpressionType(), kind)
		if ctor == nil {
			r.errorf(n, "no copy/move constructor available for %s", describeType(lhs.ExpressionType()))
			return nil
		}
		return &sema.StructAssignmentOperator{AST: n, Constructor: ctor, LHS: lhs, RHS: rhs}
	}
	converted, _, ok := r.convert(r.loadValue(rhs), lhs.ExpressionType())
	if !ok {
		r.errorf(n, "cannot assign %s to %s", describeType(rhs.ExpressionType()), describeType(lhs.ExpressionType()))
		return nil
	}
	return &sema.AssignmentOperator{AST: n, Op: n.Op, LHS: lhs, RHS: converted}
}

func (r *resolver) findConstructor(t sema.Type, kind sema.ConstructorKind) *sema.Constructor {
	s, ok := stripQualifierOnly(t).(*sema.Struct)
	if !ok {
		return nil
	}
	for _, c := range s.Constructors {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

func (r *resolver) resolveAs(n *ast.As) sema.Expression {
	v := r.resolveExpr(n.Value)
	if v == nil {
		return nil
	}
	target := r.resolveASTType(n.Target)
	if converted, _, ok := r.convert(v, target); ok {
		return &sema.ExplicitCast{AST: n, Value: converted, Type: target}
	}
	return &sema.ExplicitCast{AST: n, Value: v, Type: target}
}

func (r *resolver) resolveCheckExtendsType(n *ast.CheckExtendsType) sema.Expression {
	derived := r.resolveASTType(n.Derived)
	base := r.resolveASTType(n.Base)
	result := typeExtends(derived, base)
	return &sema.BoolLiteral{Type: &sema.Builtin{Named: sema.Named("bool"), Kind: sema.Bool}, Value: result}
}

func typeExtends(derived, base sema.Type) bool {
	for cur := derived; cur != nil; {
		if typesIdentical(cur, base) {
			return true
		}
		switch n := cur.(type) {
		case *sema.Struct:
			for _, tr := range n.Traits {
				if typesIdentical(tr, base) {
					return true
				}
			}
			cur = n.Base
		case *sema.TemplateStructInst:
			for _, tr := range n.Traits {
				if typesIdentical(tr, base) {
					return true
				}
			}
			cur = n.Base
		default:
			return false
		}
	}
	return false
}

func (r *resolver) resolveTernary(n *ast.Ternary) sema.Expression {
	cond := r.resolveExpr(n.Condition)
	then := r.resolveExpr(n.Then)
	els := r.resolveExpr(n.Else)
	if cond == nil || then == nil || els == nil {
		return nil
	}
	common, ok := commonArithmeticType(then.ExpressionType(), els.ExpressionType())
	if !ok {
		common = then.ExpressionType()
	}
	thenC, _, _ := r.convert(then, common)
	elsC, _, _ := r.convert(els, common)
	return &sema.Ternary{AST: n, Condition: cond, Then: thenC, Else: elsC, Type: common}
}

// resolveVariableDeclExpr handles a `let x = expr` binding used in
// expression position (e.g. `if let x = f() {`), registering the local the
// same way a VariableDeclStmt does (statement.go) and yielding a reference
// to it as the expression's value.
func (r *resolver) resolveVariableDeclExpr(n *ast.VariableDeclExpr) sema.Expression {
	value := r.resolveExpr(n.Value)
	if value == nil {
		return nil
	}
	v := &sema.Variable{Named: sema.Named(n.Name.Value), Value: value}
	if n.Type != nil {
		v.Type = r.resolveASTType(n.Type)
	} else {
		v.Type = value.ExpressionType()
	}
	r.addNamed(v)
	return &sema.LocalVariableRef{Var: v}
}

func (r *resolver) resolveIntrospection(n *ast.PrefixOperator) sema.Expression {
	boolType := &sema.Builtin{Named: sema.Named("bool"), Kind: sema.Bool}
	_ = boolType
	switch n.Kind {
	case ast.PrefixNameof:
		name := ""
		if n.OperandType != nil {
			name = r.resolveASTType(n.OperandType).Name()
		} else if n.Operand != nil {
			if v := r.resolveExpr(n.Operand); v != nil {
				name = v.ExpressionType().Name()
			}
		}
		return &sema.StringLiteral{Type: &sema.Pointer{To: r.get(n, "char").(sema.Type)}, Value: name}
	case ast.PrefixTraitsof:
		var t sema.Type
		if n.OperandType != nil {
			t = r.resolveASTType(n.OperandType)
		} else if n.Operand != nil {
			if v := r.resolveExpr(n.Operand); v != nil {
				t = v.ExpressionType()
			}
		}
		names := []string{}
		if s, ok := stripQualifierOnly(t).(*sema.Struct); ok {
			for _, tr := range s.Traits {
				names = append(names, tr.Name())
			}
		}
		return &sema.StringLiteral{Type: &sema.Pointer{To: r.get(n, "char").(sema.Type)}, Value: strings.Join(names, ",")}
	default:
		// sizeof/alignof/offsetof require a target-layout pass this package
		// does not implement; fold to a placeholder so downstream code at
		// least sees a well-typed constant rather than a nil expression.
		return &sema.IntegerLiteral{Type: r.get(n, "i32").(sema.Type), Value: 0}
	}
}
