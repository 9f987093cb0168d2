package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestResolveFunctionCallPlainFunction checks that a call naming a single
// visible function resolves to a FunctionCall targeting it.
func TestResolveFunctionCallPlainFunction(t *testing.T) {
	fn := &sema.Function{Named: sema.Named("greet"), ReturnType: builtin(sema.Void)}

	r := newResolver(Options{})
	r.addNamed(fn)

	n := &ast.FunctionCall{Target: &ast.IdentifierExpr{Name: ident("greet")}}
	got := r.resolveExpr(n)

	require.Empty(t, r.diags.Entries())
	call, ok := got.(*sema.FunctionCall)
	require.True(t, ok)
	assert.Same(t, fn, call.Target)
}

// TestResolveFunctionCallNotCallable checks that calling a plain variable
// is rejected.
func TestResolveFunctionCallNotCallable(t *testing.T) {
	v := &sema.Variable{Named: sema.Named("x"), Type: builtin(sema.I32)}

	r := newResolver(Options{})
	r.addNamed(v)

	n := &ast.FunctionCall{Target: &ast.IdentifierExpr{Name: ident("x")}}
	got := r.resolveExpr(n)

	assert.Nil(t, got)
	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "is not callable")
}

// TestResolveFunctionCallConstructor checks that a call naming a struct
// resolves to a ConstructorCall rather than a FunctionCall.
func TestResolveFunctionCallConstructor(t *testing.T) {
	point := &sema.Struct{Named: sema.Named("Point")}

	r := newResolver(Options{})
	r.addNamed(point)

	n := &ast.FunctionCall{Target: &ast.IdentifierExpr{Name: ident("Point")}}
	got := r.resolveExpr(n)

	require.Empty(t, r.diags.Entries())
	_, ok := got.(*sema.ConstructorCall)
	require.True(t, ok)
}

// TestResolveMemberAccessCallDispatchesMethod checks that `a.len()` resolves
// to a MemberAccessCall targeting the struct's matching method.
func TestResolveMemberAccessCallDispatchesMethod(t *testing.T) {
	vec := &sema.Struct{Named: sema.Named("Vec")}
	lenMethod := &sema.Function{Named: sema.Named("len"), ReturnType: builtin(sema.I32)}
	vec.Methods = append(vec.Methods, lenMethod)

	a := &sema.Variable{Named: sema.Named("a"), Type: vec}

	r := newResolver(Options{})
	r.addNamed(vec)
	r.addNamed(a)

	n := &ast.MemberAccessCall{Target: &ast.IdentifierExpr{Name: ident("a")}, Member: ident("len")}
	got := r.resolveExpr(n)

	require.Empty(t, r.diags.Entries())
	call, ok := got.(*sema.MemberAccessCall)
	require.True(t, ok)
	assert.Same(t, lenMethod, call.Member)
}

// TestResolveMemberAccessCallUnknownMethod checks that calling a method not
// present on the target struct (nor its base chain) is rejected.
func TestResolveMemberAccessCallUnknownMethod(t *testing.T) {
	vec := &sema.Struct{Named: sema.Named("Vec")}
	a := &sema.Variable{Named: sema.Named("a"), Type: vec}

	r := newResolver(Options{})
	r.addNamed(vec)
	r.addNamed(a)

	n := &ast.MemberAccessCall{Target: &ast.IdentifierExpr{Name: ident("a")}, Member: ident("nope")}
	got := r.resolveExpr(n)

	assert.Nil(t, got)
	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "has no method")
}
