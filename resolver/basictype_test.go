package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestResolveASTTypeBuiltin checks that a BuiltinRef to a name registered in
// builtinScope resolves to the corresponding sema.Builtin.
func TestResolveASTTypeBuiltin(t *testing.T) {
	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	got := r.resolveASTType(&ast.BuiltinRef{Name: "i32"})

	require.Empty(t, r.diags.Entries())
	b, ok := got.(*sema.Builtin)
	require.True(t, ok)
	assert.Equal(t, sema.I32, b.Kind)
}

// TestResolveASTTypeUnknownBuiltin checks that a BuiltinRef to an
// unregistered name is rejected rather than silently returning nil: the
// name lookup fails with a fatal "unknown identifier" diagnostic.
func TestResolveASTTypeUnknownBuiltin(t *testing.T) {
	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	var got sema.Type
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		got = r.resolveASTType(&ast.BuiltinRef{Name: "nope"})
	}()

	require.NotNil(t, recovered, "expected resolveASTType to abort on an unknown builtin name")
	assert.Nil(t, got)
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "unknown identifier")
}

// TestResolveASTTypePointerWrapsUnderlying checks that a PointerRef to i32
// recurses into a sema.Pointer wrapping the resolved element type.
func TestResolveASTTypePointerWrapsUnderlying(t *testing.T) {
	r := newResolver(Options{})
	r.scope.AddNamed(builtinScope()...)

	got := r.resolveASTType(&ast.PointerRef{To: &ast.BuiltinRef{Name: "u8"}})

	require.Empty(t, r.diags.Entries())
	p, ok := got.(*sema.Pointer)
	require.True(t, ok)
	b, ok := p.To.(*sema.Builtin)
	require.True(t, ok)
	assert.Equal(t, sema.U8, b.Kind)
}

// TestResolveASTTypeSelfOutsideBody checks that a bare `Self` reference
// resolved with no enclosing struct/trait/enum scope is rejected.
func TestResolveASTTypeSelfOutsideBody(t *testing.T) {
	r := newResolver(Options{})

	got := r.resolveASTType(&ast.SelfRef{})

	assert.Nil(t, got)
	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "Self used outside")
}

// TestResolveASTTypeSelfInsideBody checks that `Self` resolves to the
// enclosing type when resolved inside a `with` scope carrying one.
func TestResolveASTTypeSelfInsideBody(t *testing.T) {
	r := newResolver(Options{})
	point := &sema.Struct{Named: sema.Named("Point")}

	var got sema.Type
	r.with(point, func() {
		got = r.resolveASTType(&ast.SelfRef{})
	})

	require.Empty(t, r.diags.Entries())
	self, ok := got.(*sema.Self)
	require.True(t, ok)
	assert.Same(t, point, self.Resolved)
}

// TestResolveASTTypeNilIsNil checks that resolving a nil ast.Type (e.g. an
// omitted return type) returns nil without reporting a diagnostic.
func TestResolveASTTypeNilIsNil(t *testing.T) {
	r := newResolver(Options{})

	got := r.resolveASTType(nil)

	assert.Nil(t, got)
	assert.Empty(t, r.diags.Entries())
}
