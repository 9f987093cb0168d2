package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/sema"
)

func builtin(k sema.BuiltinKind) *sema.Builtin { return &sema.Builtin{Kind: k} }

// TestRunMangler builds a small resolved graph by hand (namespace geo {
// struct Vec { x i32; func length() i32; } }) and checks that P8 assigns
// the Itanium-compatible mangled names spec §4.8 describes.
func TestRunMangler(t *testing.T) {
	root := &sema.Namespace{}
	geo := &sema.Namespace{Named: sema.Named("geo")}
	sema.Add(root, geo)

	vec := &sema.Struct{Named: sema.Named("Vec")}
	sema.Add(geo, vec)

	x := &sema.Variable{Named: sema.Named("x"), Type: builtin(sema.I32)}
	sema.Add(vec, x)
	vec.Fields = append(vec.Fields, x)

	length := &sema.Function{Named: sema.Named("length"), ReturnType: builtin(sema.I32)}
	sema.Add(vec, length)
	vec.Methods = append(vec.Methods, length)

	ctor := &sema.Constructor{Kind: sema.ConstructorCopy}
	sema.Add(vec, ctor)
	vec.Constructors = append(vec.Constructors, ctor)

	dtor := &sema.Destructor{}
	sema.Add(vec, dtor)
	vec.Destructor = dtor

	r := newResolver(Options{})
	r.runMangler(root)

	assert.Equal(t, "_ZN3geo3VecE", vec.MangledName)
	assert.Equal(t, "_ZN3geo3Vec6lengthEv", length.MangledName)
	assert.Equal(t, "_ZN3geo3Vec1xE", x.MangledName)
	assert.Equal(t, "_ZN3geo3VecC2ERKS_", ctor.MangledName)
	assert.Equal(t, "_ZN3geo3VecD2Ev", dtor.MangledName)
}

// TestRunManglerTemplateInstantiation checks that a struct-template
// instantiation queued in instCache (never reachable by walking the
// namespace tree, since P6 never calls sema.Add on it) still gets mangled.
func TestRunManglerTemplateInstantiation(t *testing.T) {
	root := &sema.Namespace{}
	geo := &sema.Namespace{Named: sema.Named("geo")}
	sema.Add(root, geo)

	box := &sema.Struct{Named: sema.Named("Box"), TemplateParameters: []*sema.TemplateParameter{{Named: sema.Named("T")}}}
	sema.Add(geo, box)

	// inst is deliberately never added to any namespace: P6 instantiation
	// only ever records it in instCache, never via sema.Add (see template.go).
	inst := &sema.TemplateStructInst{
		Named:     sema.Named("Box"),
		Original:  box,
		Arguments: []sema.TemplateArgument{{Type: builtin(sema.I32)}},
	}

	r := newResolver(Options{})
	r.instCache[instKey{tmpl: box, args: "i32"}] = inst

	r.runMangler(root)

	require.NotEmpty(t, inst.MangledName)
	assert.Equal(t, "_ZN3geo3BoxIiEE", inst.MangledName)
}
