package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestRunConstResolverPermissibleScalar checks that a `const i32` field is
// accepted without any diagnostic.
func TestRunConstResolverPermissibleScalar(t *testing.T) {
	x := &sema.Variable{Named: sema.Named("x"), Type: &sema.Qualified{Qualifier: ast.QualConst, Underlying: builtin(sema.I32)}}

	root := &sema.Namespace{}
	sema.Add(root, x)

	r := newResolver(Options{})
	r.runConstResolver(root)

	assert.Empty(t, r.diags.Entries())
}

// TestRunConstResolverRejectsFunctionPointer checks that a `const`
// function-pointer-typed variable is rejected (function pointers are not
// const-permissible per spec §4.5).
func TestRunConstResolverRejectsFunctionPointer(t *testing.T) {
	fp := &sema.FunctionPointer{Return: builtin(sema.Void)}
	x := &sema.Variable{Named: sema.Named("callback"), Type: &sema.Qualified{Qualifier: ast.QualConst, Underlying: fp}}

	root := &sema.Namespace{}
	sema.Add(root, x)

	r := newResolver(Options{})

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		r.runConstResolver(root)
	}()

	require.NotNil(t, recovered)
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "not permitted in a const position")
}

// TestRunConstResolverStructTransitivePermissibility checks the
// ConstInheriter rule: a struct field need not carry its own `const`
// qualifier to count as const-permissible — only every field's
// *underlying* type must recursively qualify.
func TestRunConstResolverStructTransitivePermissibility(t *testing.T) {
	point := &sema.Struct{Named: sema.Named("Point")}
	fieldX := &sema.Variable{Named: sema.Named("x"), Type: builtin(sema.I32)}
	point.Fields = append(point.Fields, fieldX)

	x := &sema.Variable{Named: sema.Named("origin"), Type: &sema.Qualified{Qualifier: ast.QualConst, Underlying: point}}

	root := &sema.Namespace{}
	sema.Add(root, x)

	r := newResolver(Options{})
	r.runConstResolver(root)

	assert.Empty(t, r.diags.Entries())
}
