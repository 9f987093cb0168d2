package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestResolveCompoundDeclaresLocalAndReturnsIt checks that `let x = 1;
// return x;` resolves the declaration into the compound's LocalCount and
// the later identifier reference finds it as a LocalVariableRef.
func TestResolveCompoundDeclaresLocalAndReturnsIt(t *testing.T) {
	declX := &ast.Variable{}
	declX.Name = ident("x")
	declX.Value = &ast.IntegerLiteral{Value: 1}

	body := &ast.Compound{Statements: []ast.Stmt{
		&ast.VariableDeclStmt{Decl: declX},
		&ast.Return{Value: &ast.IdentifierExpr{Name: ident("x")}},
	}}

	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	compound := r.resolveCompound(body)

	require.Empty(t, r.diags.Entries())
	require.NotNil(t, compound)
	assert.Equal(t, 1, compound.LocalCount)
	require.Len(t, compound.Statements, 2)

	ret, ok := compound.Statements[1].(*sema.Return)
	require.True(t, ok)
	ref, ok := ret.Value.(*sema.LocalVariableRef)
	require.True(t, ok)
	assert.Equal(t, "x", ref.Var.Name())
}

// TestResolveCompoundNilBodyIsNil checks that a nil body (abstract
// method/destructor with no implementation) resolves to a nil *sema.Compound
// rather than panicking.
func TestResolveCompoundNilBodyIsNil(t *testing.T) {
	r := newResolver(Options{})

	assert.Nil(t, r.resolveCompound(nil))
}

// TestResolveStmtReturnConvertsValue checks that a `return` whose value
// needs a widening conversion to the enclosing function's declared return
// type is converted rather than left as-is.
func TestResolveStmtReturnConvertsValue(t *testing.T) {
	body := &ast.Compound{Statements: []ast.Stmt{
		&ast.Return{Value: &ast.IntegerLiteral{Value: 1}},
	}}

	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	var compound *sema.Compound
	r.withReturn(builtin(sema.I64), func() {
		compound = r.resolveCompound(body)
	})

	require.Empty(t, r.diags.Entries())
	ret := compound.Statements[0].(*sema.Return)
	require.NotNil(t, ret.Value)
	assert.Equal(t, sema.I64, ret.Value.ExpressionType().(*sema.Builtin).Kind)
}
