package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// infixOpKind maps a surface InfixKind to the OperatorKind a struct
// `operator` overload declares, nil for the two operators spec §3 never
// lets a struct overload (logical-and/or always short-circuit on bool).
var infixOpKind = map[ast.InfixKind]*ast.OperatorKind{
	ast.InfixAdd:       opKindPtr(ast.OpAdd),
	ast.InfixSub:       opKindPtr(ast.OpSub),
	ast.InfixMul:       opKindPtr(ast.OpMul),
	ast.InfixDiv:       opKindPtr(ast.OpDiv),
	ast.InfixMod:       opKindPtr(ast.OpMod),
	ast.InfixPow:       opKindPtr(ast.OpPow),
	ast.InfixBitAnd:    opKindPtr(ast.OpBitAnd),
	ast.InfixBitOr:     opKindPtr(ast.OpBitOr),
	ast.InfixBitXor:    opKindPtr(ast.OpBitXor),
	ast.InfixShl:       opKindPtr(ast.OpShl),
	ast.InfixShr:       opKindPtr(ast.OpShr),
	ast.InfixEq:        opKindPtr(ast.OpEq),
	ast.InfixNe:        opKindPtr(ast.OpNe),
	ast.InfixGt:        opKindPtr(ast.OpGt),
	ast.InfixLt:        opKindPtr(ast.OpLt),
	ast.InfixGe:        opKindPtr(ast.OpGe),
	ast.InfixLe:        opKindPtr(ast.OpLe),
	ast.InfixSpaceship: opKindPtr(ast.OpSpaceship),
}

func opKindPtr(k ast.OperatorKind) *ast.OperatorKind { return &k }

// resolveInfixOperator picks between a primitive builtin operation and a
// rewrite through a struct's `operator` overload, per spec §4.7's rule that
// any operand of struct type always dispatches through the user-written
// overload rather than ever being treated as a primitive op.
func (r *resolver) resolveInfixOperator(n *ast.InfixOperator) sema.Expression {
	lhs := r.resolveExpr(n.LHS)
	rhs := r.resolveExpr(n.RHS)
	if lhs == nil || rhs == nil {
		return nil
	}
	lhs = r.loadValue(lhs)

	if isStructOperand(lhs.ExpressionType()) {
		kind, ok := infixOpKind[n.Kind]
		if !ok {
			r.errorf(n, "operator not overloadable on a struct operand")
			return nil
		}
		op := r.findOperator(lhs.ExpressionType(), *kind, 1)
		if op == nil {
			r.fatalf(n, "no matching operator overload for %s", describeType(lhs.ExpressionType()))
			return nil
		}
		argRHS, _, ok := r.convert(r.loadValue(rhs), op.Parameters[0].Type)
		if !ok {
			r.errorf(n, "argument type %s does not match operator parameter", describeType(rhs.ExpressionType()))
			return nil
		}
		return &sema.MemberInfixOperatorCall{AST: n, Op: op, LHS: lhs, RHS: argRHS}
	}

	rhs = r.loadValue(rhs)
	common, ok := commonArithmeticType(lhs.ExpressionType(), rhs.ExpressionType())
	if !ok {
		r.errorf(n, "mismatched operand types %s and %s", describeType(lhs.ExpressionType()), describeType(rhs.ExpressionType()))
		return nil
	}
	lhsC, _, _ := r.convert(lhs, common)
	rhsC, _, _ := r.convert(rhs, common)
	resultType := common
	switch n.Kind {
	case ast.InfixEq, ast.InfixNe, ast.InfixGt, ast.InfixLt, ast.InfixGe, ast.InfixLe:
		resultType = &sema.Builtin{Named: sema.Named("bool"), Kind: sema.Bool}
	case ast.InfixLogicalAnd, ast.InfixLogicalOr:
		resultType = &sema.Builtin{Named: sema.Named("bool"), Kind: sema.Bool}
	}
	return &sema.InfixOperator{AST: n, Kind: n.Kind, Type: resultType, LHS: lhsC, RHS: rhsC}
}

func (r *resolver) resolvePrefixOperator(n *ast.PrefixOperator) sema.Expression {
	switch n.Kind {
	case ast.PrefixSizeof, ast.PrefixAlignof, ast.PrefixOffsetof, ast.PrefixNameof, ast.PrefixTraitsof:
		return r.resolveIntrospection(n)
	}

	operand := r.resolveExpr(n.Operand)
	if operand == nil {
		return nil
	}

	switch n.Kind {
	case ast.PrefixAddressOf:
		return &sema.Ref{Value: operand, Type: &sema.Pointer{To: operand.ExpressionType()}}
	case ast.PrefixDeref:
		p, ok := operand.ExpressionType().(*sema.Pointer)
		if !ok {
			r.errorf(n, "cannot dereference non-pointer type %s", describeType(operand.ExpressionType()))
			return nil
		}
		return &sema.ImplicitDeref{Value: operand, Type: p.To}
	}

	loaded := r.loadValue(operand)
	if isStructOperand(loaded.ExpressionType()) {
		kind, ok := prefixOpKind(n.Kind)
		if !ok {
			r.errorf(n, "operator not overloadable on a struct operand")
			return nil
		}
		op := r.findOperator(loaded.ExpressionType(), kind, 0)
		if op == nil {
			r.fatalf(n, "no matching operator overload for %s", describeType(loaded.ExpressionType()))
			return nil
		}
		return &sema.MemberPrefixOperatorCall{AST: n, Op: op, Operand: loaded}
	}

	return &sema.PrefixOperator{AST: n, Kind: n.Kind, Type: loaded.ExpressionType(), Operand: loaded}
}

func (r *resolver) resolvePostfixOperator(n *ast.PostfixOperator) sema.Expression {
	operand := r.resolveExpr(n.Operand)
	if operand == nil {
		return nil
	}
	if isStructOperand(operand.ExpressionType()) {
		kind := ast.OpInc
		if n.Kind == ast.PostfixDecrement {
			kind = ast.OpDec
		}
		op := r.findOperator(operand.ExpressionType(), kind, 0)
		if op == nil {
			r.fatalf(n, "no matching operator overload for %s", describeType(operand.ExpressionType()))
			return nil
		}
		return &sema.MemberPostfixOperatorCall{AST: n, Op: op, Operand: operand}
	}
	return &sema.PostfixOperator{AST: n, Kind: n.Kind, Type: operand.ExpressionType(), Operand: operand}
}

func prefixOpKind(k ast.PrefixKind) (ast.OperatorKind, bool) {
	switch k {
	case ast.PrefixNeg:
		return ast.OpNeg, true
	case ast.PrefixNot:
		return ast.OpNot, true
	case ast.PrefixBitNot:
		return ast.OpBitNot, true
	case ast.PrefixIncrement:
		return ast.OpInc, true
	case ast.PrefixDecrement:
		return ast.OpDec, true
	default:
		return 0, false
	}
}

// findOperator searches t's own Operators list (and, failing that, its base
// chain) for an overload of kind taking arity explicit parameters beyond
// the implicit self receiver.
func (r *resolver) findOperator(t sema.Type, kind ast.OperatorKind, arity int) *sema.Operator {
	for cur := t; cur != nil; {
		var ops []*sema.Operator
		var base sema.Type
		switch n := cur.(type) {
		case *sema.Struct:
			ops, base = n.Operators, n.Base
		case *sema.TemplateStructInst:
			ops, base = nil, n.Base
		default:
			return nil
		}
		for _, op := range ops {
			if op.Kind == kind && len(op.Parameters) == arity {
				return op
			}
		}
		cur = base
	}
	return nil
}

func isStructOperand(t sema.Type) bool {
	switch stripQualifierOnly(t).(type) {
	case *sema.Struct, *sema.TemplateStructInst:
		return true
	default:
		return false
	}
}

// commonArithmeticType picks the widened builtin type a primitive infix
// operator's operands convert to, the wider of the two along the same
// family (spec §4.7's "usual arithmetic conversions").
func commonArithmeticType(a, b sema.Type) (sema.Type, bool) {
	ab, aok := underlyingBuiltin(stripQualifierOnly(a))
	bb, bok := underlyingBuiltin(stripQualifierOnly(b))
	if !aok || !bok {
		if typesIdentical(a, b) {
			return a, true
		}
		return nil, false
	}
	if builtinFamily(ab.Kind) != builtinFamily(bb.Kind) {
		return nil, false
	}
	if builtinRank[ab.Kind] >= builtinRank[bb.Kind] {
		return ab, true
	}
	return bb, true
}

// loadValue applies an implicit lvalue-to-rvalue read where the caller is
// about to consume operand as a value rather than a storage location.
func (r *resolver) loadValue(e sema.Expression) sema.Expression {
	if isLValue(e) {
		if ref, ok := e.ExpressionType().(*sema.Reference); ok {
			return &sema.LValueToRValue{Value: e, Type: ref.To}
		}
	}
	return e
}
