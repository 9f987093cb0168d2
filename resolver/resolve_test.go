package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestResolveStopsAfterRequestedPass checks that Resolve honors
// Options.StopAfter: a run stopped after P1 still prototypes the shell,
// but never reaches P8's mangling step.
func TestResolveStopsAfterRequestedPass(t *testing.T) {
	point := namedStruct("Point")
	file := &ast.File{Path: "point.gulc", Declarations: []ast.Decl{point}}

	unit, diags := Resolve([]*ast.File{file}, Options{StopAfter: PassNamespacePrototyper})

	require.False(t, diags.HasErrors())
	require.NotNil(t, unit)

	member := unit.Root.Member("Point")
	require.NotNil(t, member)
	s, ok := member.(*sema.Struct)
	require.True(t, ok)
	assert.Empty(t, s.MangledName)
}

// TestResolveFullPipelineMangles checks that a run with no StopAfter limit
// drives all eight passes, assigning a mangled name to the struct.
func TestResolveFullPipelineMangles(t *testing.T) {
	point := namedStruct("Point")
	file := &ast.File{Path: "point.gulc", Declarations: []ast.Decl{point}}

	unit, diags := Resolve([]*ast.File{file}, Options{})

	require.False(t, diags.HasErrors())
	member := unit.Root.Member("Point")
	require.NotNil(t, member)
	s, ok := member.(*sema.Struct)
	require.True(t, ok)
	assert.NotEmpty(t, s.MangledName)
}
