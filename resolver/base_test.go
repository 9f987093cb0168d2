package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestRunBaseResolverResolvesStructBase builds `struct Base {}` /
// `struct Derived: Base {}` and checks that P4 populates Derived.Base with
// the resolved sema.Struct, not just a name.
func TestRunBaseResolverResolvesStructBase(t *testing.T) {
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

	r.runBaseResolver(root)

	require.False(t, r.diags.HasErrors())
	require.NotNil(t, derived.Base)
	assert.Same(t, base, derived.Base)
	assert.Empty(t, derived.Traits)
}

// TestRunBaseResolverTraitCannotInheritStruct checks that a trait listing
// a struct in its Inherits clause is rejected (spec §4.4's trait/struct
// inheritance-kind rule).
func TestRunBaseResolverTraitCannotInheritStruct(t *testing.T) {
	astBase := &ast.Struct{}
	astBase.Name = ident("Base")
	astTrait := &ast.Trait{Inherits: []ast.Type{unresolvedRef("Base")}}
	astTrait.Name = ident("Flyable")

	base := &sema.Struct{}
	base.AST, base.Named = astBase, sema.Named("Base")
	trait := &sema.Trait{}
	trait.AST, trait.Named = astTrait, sema.Named("Flyable")

	root := &sema.Namespace{}
	sema.Add(root, base)
	sema.Add(root, trait)

	r := newResolver(Options{})
	r.addNamed(base)
	r.addNamed(trait)

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		r.runBaseResolver(root)
	}()

	require.NotNil(t, recovered, "expected runBaseResolver to abort on a trait inheriting a struct")
	require.True(t, r.diags.HasErrors())
	assert.Empty(t, trait.Inherits)
}

// TestRunBaseResolverSecondBaseIsRejected checks that a struct naming two
// struct bases is an error (at most one base struct is permitted).
func TestRunBaseResolverSecondBaseIsRejected(t *testing.T) {
	astFirst := &ast.Struct{}
	astFirst.Name = ident("First")
	astSecond := &ast.Struct{}
	astSecond.Name = ident("Second")
	astDerived := &ast.Struct{Inherits: []ast.Type{unresolvedRef("First"), unresolvedRef("Second")}}
	astDerived.Name = ident("Derived")

	first := &sema.Struct{}
	first.AST, first.Named = astFirst, sema.Named("First")
	second := &sema.Struct{}
	second.AST, second.Named = astSecond, sema.Named("Second")
	derived := &sema.Struct{}
	derived.AST, derived.Named = astDerived, sema.Named("Derived")

	root := &sema.Namespace{}
	sema.Add(root, first)
	sema.Add(root, second)
	sema.Add(root, derived)

	r := newResolver(Options{})
	r.addNamed(first)
	r.addNamed(second)
	r.addNamed(derived)

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		r.runBaseResolver(root)
	}()

	require.NotNil(t, recovered, "expected runBaseResolver to abort on a second base struct")
	require.True(t, r.diags.HasErrors())
	assert.Same(t, first, derived.Base)
}
