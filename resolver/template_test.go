package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/sema"
)

// TestInstantiateSubstitutesFieldType builds `struct Box<T> { x: T }` and
// checks that instantiating it with i32 produces a TemplateStructInst
// whose field type is the concrete builtin, not the template-parameter
// placeholder.
func TestInstantiateSubstitutesFieldType(t *testing.T) {
	tp := &sema.TemplateParameter{Named: sema.Named("T")}
	ref := &sema.TemplateTypenameRef{Named: sema.Named("T"), Parameter: tp}

	box := &sema.Struct{Named: sema.Named("Box"), TemplateParameters: []*sema.TemplateParameter{tp}}
	x := &sema.Variable{Named: sema.Named("x"), Type: ref}
	box.Fields = append(box.Fields, x)

	r := newResolver(Options{})
	args := []sema.TemplateArgument{{Type: builtin(sema.I32)}}

	result := r.instantiate(box, args, nil)

	inst, ok := result.(*sema.TemplateStructInst)
	require.True(t, ok)
	assert.Same(t, box, inst.Original)
	require.Len(t, inst.Fields, 1)
	b, ok := inst.Fields[0].Type.(*sema.Builtin)
	require.True(t, ok)
	assert.Equal(t, sema.I32, b.Kind)
}

// TestInstantiateMemoizes checks that instantiating the same template with
// the same argument list twice returns the identical instance rather than
// a duplicate copy (spec §4.6's idempotence invariant).
func TestInstantiateMemoizes(t *testing.T) {
	box := &sema.Struct{Named: sema.Named("Box"), TemplateParameters: []*sema.TemplateParameter{{Named: sema.Named("T")}}}

	r := newResolver(Options{})
	args := []sema.TemplateArgument{{Type: builtin(sema.I32)}}

	first := r.instantiate(box, args, nil)
	second := r.instantiate(box, args, nil)

	assert.Same(t, first, second)
}

// TestInstantiateArityMismatch checks that instantiating with the wrong
// number of template arguments reports a diagnostic instead of panicking.
func TestInstantiateArityMismatch(t *testing.T) {
	box := &sema.Struct{Named: sema.Named("Box"), TemplateParameters: []*sema.TemplateParameter{{Named: sema.Named("T")}}}

	r := newResolver(Options{})
	result := r.instantiate(box, nil, nil)

	assert.Same(t, box, result)
	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "template argument")
}
