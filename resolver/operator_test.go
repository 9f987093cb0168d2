package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestResolveInfixOperatorWidensToWiderOperand checks that `i32 + i64`
// widens the i32 side and reports i64 as the result type (spec §4.7's
// usual-arithmetic-conversions rule).
func TestResolveInfixOperatorWidensToWiderOperand(t *testing.T) {
	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	n := &ast.InfixOperator{
		Kind: ast.InfixAdd,
		LHS:  &ast.IntegerLiteral{Value: 1, Suffix: ""},
		RHS:  &ast.IntegerLiteral{Value: 2, Suffix: "i64"},
	}

	got := r.resolveExpr(n)

	require.Empty(t, r.diags.Entries())
	op, ok := got.(*sema.InfixOperator)
	require.True(t, ok)
	b, ok := op.Type.(*sema.Builtin)
	require.True(t, ok)
	assert.Equal(t, sema.I64, b.Kind)
}

// TestResolveInfixOperatorComparisonYieldsBool checks that a comparison
// operator's result type is always bool regardless of operand type.
func TestResolveInfixOperatorComparisonYieldsBool(t *testing.T) {
	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	n := &ast.InfixOperator{
		Kind: ast.InfixLt,
		LHS:  &ast.IntegerLiteral{Value: 1},
		RHS:  &ast.IntegerLiteral{Value: 2},
	}

	got := r.resolveExpr(n)

	require.Empty(t, r.diags.Entries())
	op, ok := got.(*sema.InfixOperator)
	require.True(t, ok)
	b, ok := op.Type.(*sema.Builtin)
	require.True(t, ok)
	assert.Equal(t, sema.Bool, b.Kind)
}

// TestResolveInfixOperatorMismatchedFamilies checks that mixing an integer
// and a bool operand is rejected instead of silently picking one side.
func TestResolveInfixOperatorMismatchedFamilies(t *testing.T) {
	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	n := &ast.InfixOperator{
		Kind: ast.InfixAdd,
		LHS:  &ast.IntegerLiteral{Value: 1},
		RHS:  &ast.BoolLiteral{Value: true},
	}

	got := r.resolveExpr(n)

	assert.Nil(t, got)
	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "mismatched operand types")
}

// TestResolveInfixOperatorStructDispatchesToOverload checks that an operand
// of struct type always routes through the struct's `operator +` overload,
// never the primitive arithmetic path.
func TestResolveInfixOperatorStructDispatchesToOverload(t *testing.T) {
	vec := &sema.Struct{Named: sema.Named("Vec")}
	addOp := &sema.Operator{Kind: ast.OpAdd, Parameters: []*sema.Parameter{{Type: vec}}, ReturnType: vec}
	vec.Operators = append(vec.Operators, addOp)

	r := newResolver(Options{})
	r.addNamed(vec)

	lhsVar := &sema.Variable{Named: sema.Named("a"), Type: vec}
	rhsVar := &sema.Variable{Named: sema.Named("b"), Type: vec}
	r.addNamed(lhsVar)
	r.addNamed(rhsVar)

	n := &ast.InfixOperator{
		Kind: ast.InfixAdd,
		LHS:  &ast.IdentifierExpr{Name: ident("a")},
		RHS:  &ast.IdentifierExpr{Name: ident("b")},
	}

	got := r.resolveExpr(n)

	require.Empty(t, r.diags.Entries())
	call, ok := got.(*sema.MemberInfixOperatorCall)
	require.True(t, ok)
	assert.Same(t, addOp, call.Op)
}

// TestResolveInfixOperatorNoMatchingOverload checks that a struct operand
// with no matching `operator +` overload is rejected.
func TestResolveInfixOperatorNoMatchingOverload(t *testing.T) {
	vec := &sema.Struct{Named: sema.Named("Vec")}

	r := newResolver(Options{})
	r.addNamed(vec)
	lhsVar := &sema.Variable{Named: sema.Named("a"), Type: vec}
	rhsVar := &sema.Variable{Named: sema.Named("b"), Type: vec}
	r.addNamed(lhsVar)
	r.addNamed(rhsVar)

	n := &ast.InfixOperator{
		Kind: ast.InfixAdd,
		LHS:  &ast.IdentifierExpr{Name: ident("a")},
		RHS:  &ast.IdentifierExpr{Name: ident("b")},
	}

	var got sema.Expression
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		got = r.resolveExpr(n)
	}()

	require.NotNil(t, recovered, "expected resolveExpr to abort on a missing operator overload")
	assert.Nil(t, got)
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "no matching operator overload")
}
