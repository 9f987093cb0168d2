package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

func ident(v string) *ast.Identifier { return &ast.Identifier{Value: v} }

func nsPath(parts ...string) *ast.NamespacePath {
	p := &ast.NamespacePath{}
	for _, s := range parts {
		p.Parts = append(p.Parts, ident(s))
	}
	return p
}

func namedStruct(name string) *ast.Struct {
	s := &ast.Struct{}
	s.Name = ident(name)
	return s
}

// TestRunPrototyperMergesNamespaceFragments checks that two files each
// declaring `namespace geo { ... }` contribute members into the same
// sema.Namespace rather than producing two separate shells, and that
// declaration order across the files does not matter (spec §4.1's
// order-independence invariant).
func TestRunPrototyperMergesNamespaceFragments(t *testing.T) {
	fileA := &ast.File{
		Path: "a.gulc",
		Declarations: []ast.Decl{
			&ast.Namespace{
				Path:         nsPath("geo"),
				Declarations: []ast.Decl{namedStruct("Vec")},
			},
		},
	}
	fileB := &ast.File{
		Path: "b.gulc",
		Declarations: []ast.Decl{
			&ast.Namespace{
				Path:         nsPath("geo"),
				Declarations: []ast.Decl{namedStruct("Point")},
			},
		},
	}

	r := newResolver(Options{})
	root := &sema.Namespace{}
	r.runPrototyper([]*ast.File{fileA, fileB}, root)

	geo, ok := root.Member("geo").(*sema.Namespace)
	require.True(t, ok)
	assert.NotNil(t, geo.Member("Vec"))
	assert.NotNil(t, geo.Member("Point"))
}

// TestRunPrototyperClassifiesStructMembers checks that a struct's fields,
// constructor, destructor, and method all land both in the generic symbol
// table and in the struct's typed slices.
func TestRunPrototyperClassifiesStructMembers(t *testing.T) {
	structDecl := namedStruct("Box")

	value := &ast.Variable{}
	value.Name = ident("value")

	ctor := &ast.Constructor{Kind: ast.ConstructorCopy}

	get := &ast.Function{}
	get.Name = ident("get")

	structDecl.Members = []ast.Decl{value, ctor, &ast.Destructor{}, get}

	file := &ast.File{Declarations: []ast.Decl{structDecl}}

	r := newResolver(Options{})
	root := &sema.Namespace{}
	r.runPrototyper([]*ast.File{file}, root)

	box, ok := root.Member("Box").(*sema.Struct)
	require.True(t, ok)
	require.Len(t, box.Fields, 1)
	assert.Equal(t, "value", box.Fields[0].Name())
	require.Len(t, box.Constructors, 1)
	assert.Equal(t, sema.ConstructorCopy, box.Constructors[0].Kind)
	require.NotNil(t, box.Destructor)
	require.Len(t, box.Methods, 1)
	assert.Equal(t, "get", box.Methods[0].Name())
}

// TestRunPrototyperRecordsAttributeDecl checks that an `attribute Foo`
// declaration is recorded into knownAttributes and is not itself added
// as a member of the enclosing namespace.
func TestRunPrototyperRecordsAttributeDecl(t *testing.T) {
	attr := &ast.AttributeDecl{Name: ident("Packed")}
	file := &ast.File{Declarations: []ast.Decl{attr}}

	r := newResolver(Options{})
	root := &sema.Namespace{}
	r.runPrototyper([]*ast.File{file}, root)

	assert.Contains(t, r.knownAttributes, "Packed")
	assert.Nil(t, root.Member("Packed"))
}
