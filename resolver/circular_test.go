package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

func unresolvedRef(name string) *ast.Unresolved {
	return &ast.Unresolved{Name: ident(name)}
}

// TestRunCircularCheckDetectsCycle builds `struct A: B` / `struct B: A` by
// hand and checks that runCircularCheck raises a fatal diagnostic instead
// of recursing forever.
func TestRunCircularCheckDetectsCycle(t *testing.T) {
	astA := &ast.Struct{Inherits: []ast.Type{unresolvedRef("B")}}
	astA.Name = ident("A")
	astB := &ast.Struct{Inherits: []ast.Type{unresolvedRef("A")}}
	astB.Name = ident("B")

	a := &sema.Struct{}
	a.AST, a.Named = astA, sema.Named("A")
	b := &sema.Struct{}
	b.AST, b.Named = astB, sema.Named("B")

	root := &sema.Namespace{}
	sema.Add(root, a)
	sema.Add(root, b)

	r := newResolver(Options{})
	r.addNamed(a)
	r.addNamed(b)

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		r.runCircularCheck(root)
	}()

	require.NotNil(t, recovered, "expected runCircularCheck to abort on a cycle")
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "circular inheritance")
}

// TestRunCircularCheckAcyclic checks that a plain, non-cyclic inheritance
// chain (`struct Base`, `struct Derived: Base`) produces no diagnostics.
func TestRunCircularCheckAcyclic(t *testing.T) {
	astBase := &ast.Struct{}
	astBase.Name = ident("Base")
	astDerived := &ast.Struct{Inherits: []ast.Type{unresolvedRef("Base")}}
	astDerived.Name = ident("Derived")

	base := &sema.Struct{}
	base.AST, base.Named = astBase, sema.Named("Base")
	derived := &sema.Struct{}
	derived.AST, derived.Named = astDerived, sema.Named("Derived")

	root := &sema.Namespace{}
	sema.Add(root, base)
	sema.Add(root, derived)

	r := newResolver(Options{})
	r.addNamed(base)
	r.addNamed(derived)

	r.runCircularCheck(root)

	assert.False(t, r.diags.HasErrors())
	assert.Empty(t, r.diags.Entries())
}
